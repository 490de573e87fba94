package dto

import "github.com/jekabolt/organic-reports/internal/entity"

// User is a storefront account as returned by GET /users.
type User struct {
	ID        ID     `json:"id"`
	MongoID   ID     `json:"_id"`
	CreatedAt *Time  `json:"createdAt"`
	Status    string `json:"status"`
}

type UsersResponse struct {
	Users []User `json:"users"`
}

func ConvertUserToEntity(u User) entity.User {
	eu := entity.User{
		ID:     firstID(u.ID, u.MongoID),
		Status: u.Status,
	}
	if u.CreatedAt != nil {
		eu.CreatedAt = u.CreatedAt.Time
	}
	return eu
}

func ConvertUsersToEntity(users []User) []entity.User {
	res := make([]entity.User, 0, len(users))
	for _, u := range users {
		res = append(res, ConvertUserToEntity(u))
	}
	return res
}
