package classes

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}
