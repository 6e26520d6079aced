package entity

// Project is a row of the collaborator-owned current_projects table.
type Project struct {
	ID   int64
	Name string
}

// Enrollment links a user to a project.
type Enrollment struct {
	UserID    int64
	ProjectID int64
}
