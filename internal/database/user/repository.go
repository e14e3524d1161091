package user

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}
