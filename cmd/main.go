package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/DrivaTecnologia/api-parcerias/internal/atividade"
	"github.com/DrivaTecnologia/api-parcerias/internal/auth"
	"github.com/DrivaTecnologia/api-parcerias/internal/importacao"
	"github.com/DrivaTecnologia/api-parcerias/internal/logger"
	"github.com/DrivaTecnologia/api-parcerias/internal/metricas"
	"github.com/DrivaTecnologia/api-parcerias/internal/nutricao"
	"github.com/DrivaTecnologia/api-parcerias/internal/oportunidade"
	"github.com/DrivaTecnologia/api-parcerias/internal/pagamento"
	"github.com/DrivaTecnologia/api-parcerias/internal/parceiro"
	"github.com/DrivaTecnologia/api-parcerias/internal/recurso"
	"github.com/DrivaTecnologia/api-parcerias/internal/usuario"
	"github.com/DrivaTecnologia/api-parcerias/internal/utils/db"
)

func main() {
	_ = godotenv.Load()
	log := logger.New()

	database, err := db.GetDB()
	if err != nil {
		log.Fatal().Err(err).Msg("erro ao conectar no banco")
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&usuario.Usuario{},
		&parceiro.Parceiro{},
		&oportunidade.Oportunidade{},
		&pagamento.Pagamento{},
		&atividade.Atividade{},
		&recurso.Recurso{},
		&nutricao.Conteudo{},
	); err != nil {
		log.Fatal().Err(err).Msg("erro no AutoMigrate")
	}

	// Serviços e handlers
	metricasService := metricas.NewService(database, log)

	usuarioHandler := usuario.NewHandler(database)
	parceiroHandler := parceiro.NewHandler(database)
	oportunidadeHandler := oportunidade.NewHandler(database)
	pagamentoHandler := pagamento.NewHandler(database)
	atividadeHandler := atividade.NewHandler(database)
	recursoHandler := recurso.NewHandler(database)
	nutricaoHandler := nutricao.NewHandler(database)
	metricasHandler := metricas.NewHandler(metricasService)
	importacaoHandler := importacao.NewHandler(database, metricasService, log)

	// Router
	r := mux.NewRouter()
	r.Use(logger.MiddlewareRequisicao(log))

	// Rota pública de autenticação
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("/me", usuarioHandler.Me).Methods("GET")
	api.Handle("/usuarios", auth.RequireAdmin(http.HandlerFunc(usuarioHandler.CriarUsuario))).Methods("POST")

	// Rotas de parceiros
	api.HandleFunc("/parceiros", parceiroHandler.CriarParceiro).Methods("POST")
	api.HandleFunc("/parceiros", parceiroHandler.ListarParceiros).Methods("GET")
	api.HandleFunc("/parceiros/metricas", metricasHandler.ListarParceiros).Methods("GET")
	api.HandleFunc("/parceiros/importar", importacaoHandler.ImportarParceiros).Methods("POST")
	api.HandleFunc("/parceiros/{id}", parceiroHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/parceiros/{id}", parceiroHandler.AtualizarParceiro).Methods("PUT")
	api.HandleFunc("/parceiros/{id}", parceiroHandler.DeletarParceiro).Methods("DELETE")
	api.HandleFunc("/parceiros/{id}/resumo", metricasHandler.ResumoParceiro).Methods("GET")
	api.HandleFunc("/parceiros/{id}/atividades", atividadeHandler.ListarPorParceiro).Methods("GET")

	// Rotas de oportunidades
	api.HandleFunc("/oportunidades", oportunidadeHandler.Criar).Methods("POST")
	api.HandleFunc("/oportunidades", oportunidadeHandler.Listar).Methods("GET")
	api.HandleFunc("/oportunidades/importar", importacaoHandler.ImportarOportunidades).Methods("POST")
	api.HandleFunc("/oportunidades/excluir-em-massa", oportunidadeHandler.ExcluirEmMassa).Methods("POST")
	api.HandleFunc("/oportunidades/{id}", oportunidadeHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/oportunidades/{id}", oportunidadeHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/oportunidades/{id}", oportunidadeHandler.Deletar).Methods("DELETE")

	// Rotas de pagamentos (comissionamento)
	api.HandleFunc("/pagamentos", pagamentoHandler.Criar).Methods("POST")
	api.HandleFunc("/pagamentos", pagamentoHandler.Listar).Methods("GET")
	api.HandleFunc("/pagamentos/importar", importacaoHandler.ImportarPagamentos).Methods("POST")
	api.HandleFunc("/pagamentos/excluir-em-massa", pagamentoHandler.ExcluirEmMassa).Methods("POST")
	api.HandleFunc("/pagamentos/{id}", pagamentoHandler.Deletar).Methods("DELETE")

	// Rotas de atividades
	api.HandleFunc("/atividades", atividadeHandler.Criar).Methods("POST")
	api.HandleFunc("/atividades", atividadeHandler.ListarRecentes).Methods("GET")
	api.HandleFunc("/atividades/{id}", atividadeHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/atividades/{id}", atividadeHandler.Deletar).Methods("DELETE")

	// Rotas da central de recursos
	api.HandleFunc("/recursos", recursoHandler.Criar).Methods("POST")
	api.HandleFunc("/recursos", recursoHandler.Listar).Methods("GET")
	api.HandleFunc("/recursos/{id}", recursoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/recursos/{id}", recursoHandler.Deletar).Methods("DELETE")

	// Rotas de nutrição
	api.HandleFunc("/nutricao", nutricaoHandler.Criar).Methods("POST")
	api.HandleFunc("/nutricao", nutricaoHandler.Listar).Methods("GET")
	api.HandleFunc("/nutricao/{id}", nutricaoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/nutricao/{id}", nutricaoHandler.Deletar).Methods("DELETE")

	// Dashboard
	api.HandleFunc("/dashboard/resumo", metricasHandler.ResumoDashboard).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{os.Getenv("CORS_ORIGIN")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	log.Info().Str("porta", porta).Msg("servidor iniciado")
	if err := http.ListenAndServe(":"+porta, handler); err != nil {
		log.Fatal().Err(err).Msg("servidor encerrou com erro")
	}
}
