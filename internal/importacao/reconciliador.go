// internal/importacao/reconciliador.go
package importacao

import (
	"strings"

	"github.com/DrivaTecnologia/api-parcerias/internal/nivel"
	"github.com/DrivaTecnologia/api-parcerias/internal/oportunidade"
	"github.com/DrivaTecnologia/api-parcerias/internal/pagamento"
	"github.com/DrivaTecnologia/api-parcerias/internal/parceiro"
	"github.com/DrivaTecnologia/api-parcerias/internal/valores"
)

// Alvo identifica a coleção de destino de uma importação.
type Alvo string

const (
	AlvoParceiros     Alvo = "parceiros"
	AlvoOportunidades Alvo = "oportunidades"
	AlvoPagamentos    Alvo = "pagamentos"
)

// Opcoes parametriza a reconciliação de um lote.
type Opcoes struct {
	// Diretorio mapeia nome de parceiro (minúsculo, sem espaços nas
	// pontas) para o ID. Obrigatório para pagamentos; usado em
	// oportunidades quando nenhum parceiro foi pré-selecionado.
	Diretorio map[string]uint

	// ParceiroSelecionadoID, quando informado, atribui todas as linhas de
	// oportunidade a esse parceiro em vez de resolver pelo nome.
	ParceiroSelecionadoID   uint
	NomeParceiroSelecionado string
}

// Resultado carrega os registros validados e a tabulação do lote.
// Os contadores descrevem a validação; a persistência é responsabilidade
// do chamador, em uma única transação.
type Resultado struct {
	Parceiros     []parceiro.Parceiro         `json:"-"`
	Oportunidades []oportunidade.Oportunidade `json:"-"`
	Pagamentos    []pagamento.Pagamento       `json:"-"`

	Sucessos int `json:"importadosComSucesso"`
	Falhas   int `json:"falhas"`
}

// Reconciliar valida e normaliza as linhas de uma planilha na coleção alvo.
// Linhas inválidas são contadas e puladas, nunca interrompem o lote: falta
// de campo obrigatório, data ilegível e parceiro não resolvido são falhas
// por linha. A função só retorna os registros prontos para persistir; não
// toca em banco nem escreve logs.
func Reconciliar(linhas []Linha, alvo Alvo, opcoes Opcoes) Resultado {
	var resultado Resultado

	for _, linha := range linhas {
		var ok bool
		switch alvo {
		case AlvoParceiros:
			ok = reconciliarParceiro(linha, &resultado)
		case AlvoOportunidades:
			ok = reconciliarOportunidade(linha, opcoes, &resultado)
		case AlvoPagamentos:
			ok = reconciliarPagamento(linha, opcoes, &resultado)
		}
		if ok {
			resultado.Sucessos++
		} else {
			resultado.Falhas++
		}
	}
	return resultado
}

func reconciliarParceiro(linha Linha, resultado *Resultado) bool {
	nome := linha.Campo("name")
	tipo := linha.Campo("type")
	contato := linha.Campo("contactName")
	email := linha.Campo("contactEmail")
	if nome == "" || tipo == "" || contato == "" || email == "" {
		return false
	}

	resultado.Parceiros = append(resultado.Parceiros, parceiro.Parceiro{
		Nome:         nome,
		Tipo:         string(nivel.NormalizarTipo(tipo)),
		NomeContato:  contato,
		EmailContato: email,
	})
	return true
}

func reconciliarOportunidade(linha Linha, opcoes Opcoes, resultado *Resultado) bool {
	cliente := linha.Campo("clientName")
	valorBruto := linha.Campo("value")
	status := linha.Campo("status")
	dataBruta := linha.Campo("submissionDate")
	if cliente == "" || valorBruto == "" || status == "" || dataBruta == "" {
		return false
	}

	parceiroID := opcoes.ParceiroSelecionadoID
	nomeParceiro := opcoes.NomeParceiroSelecionado
	if parceiroID == 0 {
		var ok bool
		parceiroID, ok = resolverParceiro(linha.Campo("partnerName"), opcoes.Diretorio)
		if !ok {
			return false
		}
		nomeParceiro = linha.Campo("partnerName")
	}

	data, err := valores.ParseDataFlexivel(dataBruta)
	if err != nil {
		// Data ilegível invalida a linha; nunca persistimos data zerada.
		return false
	}

	resultado.Oportunidades = append(resultado.Oportunidades, oportunidade.Oportunidade{
		ParceiroID:    parceiroID,
		NomeParceiro:  nomeParceiro,
		Cliente:       cliente,
		Valor:         valores.ParseMonetario(valorBruto),
		Status:        status,
		DataIndicacao: data,
	})
	return true
}

func reconciliarPagamento(linha Linha, opcoes Opcoes, resultado *Resultado) bool {
	cliente := linha.Campo("clientName")
	valorBruto := linha.Campo("paymentValue")
	dataBruta := linha.Campo("paymentDate")
	nomeParceiro := linha.Campo("partnerName")
	if cliente == "" || valorBruto == "" || dataBruta == "" {
		return false
	}

	parceiroID, ok := resolverParceiro(nomeParceiro, opcoes.Diretorio)
	if !ok {
		return false
	}

	data, err := valores.ParseDataFlexivel(dataBruta)
	if err != nil {
		return false
	}

	resultado.Pagamentos = append(resultado.Pagamentos, pagamento.Pagamento{
		ParceiroID:    parceiroID,
		NomeParceiro:  nomeParceiro,
		Cliente:       cliente,
		Valor:         valores.ParseMonetario(valorBruto),
		DataPagamento: data,
	})
	return true
}

// resolverParceiro busca o nome no diretório, sem diferenciar caixa.
func resolverParceiro(nome string, diretorio map[string]uint) (uint, bool) {
	if nome == "" {
		return 0, false
	}
	id, ok := diretorio[strings.ToLower(strings.TrimSpace(nome))]
	return id, ok
}
