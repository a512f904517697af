package oportunidade

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func bancoDeTeste(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func novaOportunidade(parceiroID uint, cliente string, dia time.Time) Oportunidade {
	return Oportunidade{
		ParceiroID:    parceiroID,
		NomeParceiro:  "Acme",
		Cliente:       cliente,
		Valor:         1000,
		Status:        StatusPendente,
		DataIndicacao: dia,
	}
}

func TestCreateEListAll(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewRepository(db)

	antiga := novaOportunidade(1, "Antiga", time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC))
	recente := novaOportunidade(1, "Recente", time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(&antiga))
	require.NoError(t, repo.Create(&recente))

	todas, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, todas, 2)
	assert.Equal(t, "Recente", todas[0].Cliente)
	assert.Equal(t, "Antiga", todas[1].Cliente)
}

func TestListByParceiro(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewRepository(db)

	dia := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(&Oportunidade{ParceiroID: 1, Cliente: "A", Status: StatusGanho, DataIndicacao: dia}))
	require.NoError(t, repo.Create(&Oportunidade{ParceiroID: 2, Cliente: "B", Status: StatusGanho, DataIndicacao: dia}))

	doUm, err := repo.ListByParceiro(1)
	require.NoError(t, err)
	require.Len(t, doUm, 1)
	assert.Equal(t, "A", doUm[0].Cliente)
}

func TestDeleteEmMassa(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewRepository(db)

	dia := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	var ids []uint
	for _, cliente := range []string{"A", "B", "C"} {
		o := novaOportunidade(1, cliente, dia)
		require.NoError(t, repo.Create(&o))
		ids = append(ids, o.ID)
	}

	require.NoError(t, repo.DeleteEmMassa(ids[:2]))

	restantes, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, restantes, 1)
	assert.Equal(t, "C", restantes[0].Cliente)
}

func TestCreateInBatch(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewRepository(db)

	dia := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	lote := []Oportunidade{
		novaOportunidade(1, "A", dia),
		novaOportunidade(1, "B", dia),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return CreateInBatch(tx, lote)
	})
	require.NoError(t, err)

	todas, err := repo.ListAll()
	require.NoError(t, err)
	assert.Len(t, todas, 2)
}

func TestCreateInBatchLoteVazio(t *testing.T) {
	db := bancoDeTeste(t)

	err := db.Transaction(func(tx *gorm.DB) error {
		return CreateInBatch(tx, nil)
	})
	assert.NoError(t, err)
}

func TestStatusValido(t *testing.T) {
	for _, s := range []string{StatusPendente, StatusAprovado, StatusGanho, StatusPerdido} {
		assert.True(t, StatusValido(s), s)
	}
	assert.False(t, StatusValido("Em Negociação"))
	assert.False(t, StatusValido(""))
}
