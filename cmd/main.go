package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/MoraisCastro/api-provisionamento/internal/acordo"
	"github.com/MoraisCastro/api-provisionamento/internal/advogado"
	"github.com/MoraisCastro/api-provisionamento/internal/alerta"
	"github.com/MoraisCastro/api-provisionamento/internal/auth"
	"github.com/MoraisCastro/api-provisionamento/internal/banco"
	"github.com/MoraisCastro/api-provisionamento/internal/comentario"
	"github.com/MoraisCastro/api-provisionamento/internal/contrato"
	"github.com/MoraisCastro/api-provisionamento/internal/garantia"
	"github.com/MoraisCastro/api-provisionamento/internal/momento"
	"github.com/MoraisCastro/api-provisionamento/internal/parcelaacordo"
	"github.com/MoraisCastro/api-provisionamento/internal/provisao"
	"github.com/MoraisCastro/api-provisionamento/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	// Sem segredo o token seria assinado com chave vazia e forjável.
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET não configurado")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&advogado.Advogado{},
		&banco.Banco{},
		&contrato.Contrato{},
		&garantia.Garantia{},
		&provisao.AnaliseProvisao{},
		&momento.MomentoContrato{},
		&alerta.Alerta{},
		&acordo.Acordo{},
		&parcelaacordo.ParcelaAcordo{},
		&comentario.Comentario{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Serviço de cálculo com as tabelas regulatórias padrão
	calcService, err := provisao.NewService(
		database,
		provisao.TabelaPadrao(),
		momento.TabelaPadrao(),
		momento.ModoPorFaixa,
	)
	if err != nil {
		log.Fatal("Erro na configuração das tabelas de provisão:", err)
	}

	// Handlers
	advogadoHandler := advogado.NewHandler(database)
	bancoHandler := banco.NewHandler(database)
	contratoHandler := contrato.NewHandler(database)
	garantiaHandler := garantia.NewHandler(garantia.NewRepository(database))
	provisaoHandler := provisao.NewHandler(calcService)
	alertaHandler := alerta.NewHandler(database)
	acordoHandler := acordo.NewHandler(acordo.NewRepository(database))
	parcelaHandler := parcelaacordo.NewHandler(parcelaacordo.NewRepository(database))
	comentarioHandler := comentario.NewHandler(database)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", advogadoHandler.Login).Methods("POST")
	r.HandleFunc("/advogados", advogadoHandler.Criar).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de advogados
	api.HandleFunc("/advogados", advogadoHandler.Listar).Methods("GET")
	api.HandleFunc("/advogados/me", advogadoHandler.Me).Methods("GET")
	api.HandleFunc("/advogados/me/senha", advogadoHandler.AlterarSenha).Methods("PUT")
	api.HandleFunc("/advogados/resumo", advogadoHandler.ObterResumo).Methods("GET")
	api.HandleFunc("/advogados/{id}", advogadoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/advogados/{id}", advogadoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/advogados/{id}", advogadoHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/advogados/{id}/reset-senha", advogadoHandler.ResetarSenha).Methods("POST")
	api.HandleFunc("/advogados/{id}/resumo", advogadoHandler.ObterResumo).Methods("GET")
	api.HandleFunc("/advogados/me/acordos", acordoHandler.ListMine).Methods("GET")

	// Rotas de bancos
	api.HandleFunc("/bancos", bancoHandler.Criar).Methods("POST")
	api.HandleFunc("/bancos", bancoHandler.Listar).Methods("GET")
	api.HandleFunc("/bancos/{id}", bancoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/bancos/{id}", bancoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/bancos/{id}", bancoHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/bancos/{id}/contratos", contratoHandler.ListarPorBanco).Methods("GET")

	// Rotas de contratos
	api.HandleFunc("/tipos-operacao", contratoHandler.ListarTiposOperacao).Methods("GET")
	api.HandleFunc("/contratos", contratoHandler.Criar).Methods("POST")
	api.HandleFunc("/contratos", contratoHandler.Listar).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/contratos/{id}", contratoHandler.Deletar).Methods("DELETE")

	// Rotas de garantias
	api.HandleFunc("/contratos/{id}/garantias", garantiaHandler.Create).Methods("POST")
	api.HandleFunc("/contratos/{id}/garantias", garantiaHandler.List).Methods("GET")
	api.HandleFunc("/garantias/{gid}", garantiaHandler.Update).Methods("PUT")
	api.HandleFunc("/garantias/{gid}", garantiaHandler.Delete).Methods("DELETE")

	// Rotas de análise de provisão
	api.HandleFunc("/contratos/{id}/analises", provisaoHandler.Calcular).Methods("POST")
	api.HandleFunc("/contratos/{id}/analises", provisaoHandler.Listar).Methods("GET")
	api.HandleFunc("/analises/{id}", provisaoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/analises/recalcular", provisaoHandler.Recalcular).Methods("POST")

	// Rotas de alertas de momento
	api.HandleFunc("/alertas", alertaHandler.Listar).Methods("GET")
	api.HandleFunc("/alertas/{id}/lida", alertaHandler.MarcarComoLida).Methods("PATCH")
	api.HandleFunc("/contratos/{id}/alertas", alertaHandler.ListarPorContrato).Methods("GET")

	// Rotas de acordos
	api.HandleFunc("/contratos/{id}/acordos", acordoHandler.Create).Methods("POST")
	api.HandleFunc("/contratos/{id}/acordos", acordoHandler.List).Methods("GET")
	api.HandleFunc("/acordos/{aid}", acordoHandler.Get).Methods("GET")
	api.HandleFunc("/acordos/{aid}/status", acordoHandler.UpdateStatus).Methods("PATCH")
	api.HandleFunc("/acordos/{aid}", acordoHandler.Delete).Methods("DELETE")
	api.HandleFunc("/acordos/{aid}/parcelas", parcelaHandler.List).Methods("GET")
	api.HandleFunc("/parcelas-acordo/{pid}", parcelaHandler.Update).Methods("PUT")
	api.HandleFunc("/parcelas-acordo/{pid}/status", parcelaHandler.UpdateStatus).Methods("PATCH")
	api.HandleFunc("/parcelas-acordo/{pid}", parcelaHandler.Delete).Methods("DELETE")

	// Rotas de comentários
	api.HandleFunc("/contratos/{id}/comentarios", comentarioHandler.Criar).Methods("POST")
	api.HandleFunc("/contratos/{id}/comentarios", comentarioHandler.ListarPorContrato).Methods("GET")
	api.HandleFunc("/comentarios", comentarioHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/comentarios/{id}", comentarioHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/comentarios/{id}", comentarioHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/comentarios/{id}", comentarioHandler.Remover).Methods("DELETE")

	// CORS para o frontend do escritório
	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{os.Getenv("CORS_ORIGIN")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	// Inicia servidor
	fmt.Printf("Servidor rodando em http://localhost:%s\n", porta)
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}
