package parceiro

import (
	"testing"

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

func TestSalvarEBuscar(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewRepository()

	p := &Parceiro{Nome: "Acme", Tipo: "FINDER", NomeContato: "Ana", EmailContato: "ana@acme.com"}
	require.NoError(t, repo.Salvar(db, p))
	require.NotZero(t, p.ID)

	encontrado, err := repo.BuscarPorID(db, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", encontrado.Nome)
	assert.Equal(t, "FINDER", encontrado.Tipo)
}

func TestListarTodosOrdenaPorNome(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewRepository()

	require.NoError(t, repo.Salvar(db, &Parceiro{Nome: "Zeta", Tipo: "SELLER"}))
	require.NoError(t, repo.Salvar(db, &Parceiro{Nome: "Acme", Tipo: "FINDER"}))

	todos, err := repo.ListarTodos(db)
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "Acme", todos[0].Nome)
	assert.Equal(t, "Zeta", todos[1].Nome)
}

func TestAtualizar(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewRepository()

	p := &Parceiro{Nome: "Acme", Tipo: "FINDER"}
	require.NoError(t, repo.Salvar(db, p))

	require.NoError(t, repo.Atualizar(db, p.ID, &Parceiro{Nome: "Acme Ltda", Tipo: "SELLER"}))

	encontrado, err := repo.BuscarPorID(db, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltda", encontrado.Nome)
	assert.Equal(t, "SELLER", encontrado.Tipo)
}

func TestAtualizarInexistente(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewRepository()

	err := repo.Atualizar(db, 42, &Parceiro{Nome: "Fantasma"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeletar(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewRepository()

	p := &Parceiro{Nome: "Acme", Tipo: "FINDER"}
	require.NoError(t, repo.Salvar(db, p))
	require.NoError(t, repo.Deletar(db, p.ID))

	_, err := repo.BuscarPorID(db, p.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDiretorio(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewRepository()

	a := &Parceiro{Nome: "  Acme  ", Tipo: "FINDER"}
	b := &Parceiro{Nome: "Beta Corp", Tipo: "SELLER"}
	require.NoError(t, repo.Salvar(db, a))
	require.NoError(t, repo.Salvar(db, b))

	diretorio, err := repo.Diretorio(db)
	require.NoError(t, err)
	assert.Equal(t, a.ID, diretorio["acme"])
	assert.Equal(t, b.ID, diretorio["beta corp"])
}
