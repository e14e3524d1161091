package tasks

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}
