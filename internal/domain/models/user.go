package models

type User struct {
	ID       int64
	Name     string
	PassHash []byte
	Roles    []string
}

func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
