package models

type Course struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
