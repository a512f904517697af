// internal/nivel/nivel.go
package nivel

import "strings"

// TipoParceiro distingue as duas modalidades do programa de parceria.
type TipoParceiro string

const (
	Finder TipoParceiro = "FINDER"
	Seller TipoParceiro = "SELLER"
)

// NormalizarTipo aceita o tipo em qualquer caixa; valores desconhecidos ou
// vazios caem em FINDER.
func NormalizarTipo(s string) TipoParceiro {
	if strings.EqualFold(strings.TrimSpace(s), string(Seller)) {
		return Seller
	}
	return Finder
}

// Nivel descreve a faixa de comissionamento de um parceiro no período,
// com os atributos de exibição que o painel consome.
type Nivel struct {
	Nome     string  `json:"nome"`
	Taxa     float64 `json:"taxa"` // percentual de comissão
	Icone    string  `json:"icone"`
	Cor      string  `json:"cor"`
	CorFundo string  `json:"corFundo"`
}

// Limites do programa. Comparação sempre por >= (limite inferior inclusivo),
// avaliada da faixa mais alta para a mais baixa.
const (
	DiamanteFinderMin = 30001.0
	DiamanteSellerMin = 20001.0
	OuroMin           = 5001.0
	PrataMin          = 499.0
)

var (
	nivelDiamante = Nivel{Nome: "Diamante", Icone: "gem", Cor: "text-cyan-500", CorFundo: "bg-cyan-100"}
	nivelOuro     = Nivel{Nome: "Ouro", Icone: "trophy", Cor: "text-amber-500", CorFundo: "bg-amber-100"}
	nivelPrata    = Nivel{Nome: "Prata", Icone: "star", Cor: "text-gray-500", CorFundo: "bg-gray-100"}
	nivelNenhum   = Nivel{Nome: "N/A", Icone: "users", Cor: "text-slate-400", CorFundo: "bg-slate-100", Taxa: 0}
)

var taxas = map[string]map[TipoParceiro]float64{
	"Diamante": {Finder: 15, Seller: 25},
	"Ouro":     {Finder: 10, Seller: 20},
	"Prata":    {Finder: 5, Seller: 15},
}

// Calcular mapeia o total de pagamentos recebidos no período para a faixa
// de comissionamento do parceiro. Função pura e total: qualquer valor e
// qualquer tipo produzem exatamente uma faixa.
func Calcular(pagamentosRecebidos float64, tipo TipoParceiro) Nivel {
	if tipo != Seller {
		tipo = Finder
	}

	diamanteMin := DiamanteFinderMin
	if tipo == Seller {
		diamanteMin = DiamanteSellerMin
	}

	var n Nivel
	switch {
	case pagamentosRecebidos >= diamanteMin:
		n = nivelDiamante
	case pagamentosRecebidos >= OuroMin:
		n = nivelOuro
	case pagamentosRecebidos >= PrataMin:
		n = nivelPrata
	default:
		return nivelNenhum
	}

	n.Taxa = taxas[n.Nome][tipo]
	return n
}

// Comissao calcula o valor a pagar sobre o agregado do período.
func (n Nivel) Comissao(pagamentosRecebidos float64) float64 {
	return pagamentosRecebidos * n.Taxa / 100
}
