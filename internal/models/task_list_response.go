package models

type TaskListResponse struct {
	Tasks []Task `json:"tasks"`
	Page  int    `json:"page"`
	Size  int    `json:"size"`
	Total int64  `json:"total"`
}
