package respond

type UserItem struct {
	Uuid   string `json:"uuid"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
	Status string `json:"status,omitempty"`
}

type LoginRespond struct {
	User  UserItem `json:"user"`
	Token string   `json:"token"`
}
