package kernel

type UserID string

func NewUserID(id string) UserID { return UserID(id) }
func (u UserID) String() string  { return string(u) }
func (u UserID) IsEmpty() bool   { return string(u) == "" }

type ContentID string

func NewContentID(id string) ContentID { return ContentID(id) }
func (c ContentID) String() string     { return string(c) }
func (c ContentID) IsEmpty() bool      { return string(c) == "" }
