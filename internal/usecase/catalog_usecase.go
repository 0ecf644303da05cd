package usecase

import (
	"context"

	"agendamento_cras/internal/domain/entities"

	"github.com/samber/lo"
)

// fallbackNeighborhoods feeds the "Bairro de Moradia" selector.
var fallbackNeighborhoods = []string{
	"Abolição", "Acari", "Água Santa", "Alto da Boa Vista", "Anchieta", "Andaraí", "Anil",
	"Bairro Imperial de São Cristóvão", "Bancários", "Bangu", "Barra da Tijuca", "Barra de Guaratiba",
	"Barros Filho", "Benfica", "Bento Ribeiro", "Bonsucesso", "Botafogo", "Brás de Pina",
	"Cachambi", "Cacuia", "Caju", "Camorim", "Campinho", "Campo dos Afonsos", "Campo Grande",
	"Cascadura", "Catete", "Catumbi", "Cavalcanti", "Centro", "Cidade de Deus", "Cidade Nova",
	"Copacabana", "Flamengo", "Ipanema", "Leblon", "Tijuca", "Vila Isabel", "Madureira",
	"Méier", "Penha", "Realengo", "Santa Cruz", "São Conrado", "Recreio dos Bandeirantes",
}

var fallbackServiceTypes = []entities.ServiceType{
	{Value: "Criação", Label: "Novo Cadastro"},
	{Value: "Atualização", Label: "Atualização Cadastral"},
}

// ICatalogUseCase lists the static options of the form selectors.
type ICatalogUseCase interface {
	ListServiceTypes(ctx context.Context) []entities.ServiceType
	ListNeighborhoods(ctx context.Context) []string
}

type CatalogUseCase struct{}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase() *CatalogUseCase {
	return &CatalogUseCase{}
}

func (u *CatalogUseCase) ListServiceTypes(_ context.Context) []entities.ServiceType {
	return append([]entities.ServiceType(nil), fallbackServiceTypes...)
}

// ListNeighborhoods returns the neighborhoods without duplicates, in display order.
func (u *CatalogUseCase) ListNeighborhoods(_ context.Context) []string {
	return lo.Uniq(fallbackNeighborhoods)
}
