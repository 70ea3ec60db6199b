package impl

import (
	"context"
	"testing"

	"dashbi/internal/domain/entity"
	mockRepo "dashbi/internal/mocks/repository"
	"dashbi/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// licenseServiceFixtures holds all test dependencies for license service tests.
type licenseServiceFixtures struct {
	service     usecase.LicenseUsecase
	licenseRepo *mockRepo.MockLicenseRepository
}

func createTestLicenseService(t *testing.T) licenseServiceFixtures {
	licenseRepo := mockRepo.NewMockLicenseRepository(t)
	service := NewLicenseService(licenseRepo)

	return licenseServiceFixtures{
		service:     service,
		licenseRepo: licenseRepo,
	}
}

func TestLicenseService_ListLicenses(t *testing.T) {
	fx := createTestLicenseService(t)

	ctx := context.Background()
	matrizes := []*entity.PDVLicencaFilial{
		{
			ID:        1,
			CodFilial: 100,
			CodGrupo:  10,
			Nome:      "Matriz Exemplo",
			Matriz:    true,
			Grupo: &entity.PDVLicencaGrupo{
				ID:       1,
				CodGrupo: 10,
				Filiais: []*entity.PDVLicencaFilial{
					{ID: 2, CodFilial: 101, CodGrupo: 10, Nome: "Filial Exemplo"},
				},
			},
		},
	}

	fx.licenseRepo.EXPECT().
		CountMatrizes(ctx).
		Return(int64(25), nil)

	fx.licenseRepo.EXPECT().
		FindMatrizes(ctx, 10, 10).
		Return(matrizes, nil)

	output, err := fx.service.ListLicenses(ctx, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), output.Meta.Total)
	assert.Equal(t, 2, output.Meta.Page)
	assert.Equal(t, 3, output.Meta.LastPage)
	require.Len(t, output.Data, 1)
	require.NotNil(t, output.Data[0].Grupo)
	assert.Len(t, output.Data[0].Grupo.Filiais, 1)
}

func TestLicenseService_ListLicenses_Defaults(t *testing.T) {
	fx := createTestLicenseService(t)

	ctx := context.Background()

	fx.licenseRepo.EXPECT().
		CountMatrizes(ctx).
		Return(int64(0), nil)

	fx.licenseRepo.EXPECT().
		FindMatrizes(ctx, 0, 10).
		Return([]*entity.PDVLicencaFilial{}, nil)

	output, err := fx.service.ListLicenses(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, output.Meta.Page)
	assert.Equal(t, 1, output.Meta.LastPage)
	assert.Empty(t, output.Data)
}
