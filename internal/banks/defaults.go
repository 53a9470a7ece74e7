package banks

import "github.com/SrRenks/febraban-code/internal/model"

// DefaultRegistry returns the built-in table of well-known FEBRABAN
// member institutions, keyed by settlement code.
func DefaultRegistry() []model.Bank {
	return []model.Bank{
		{Code: "001", Name: "Banco do Brasil S.A."},
		{Code: "003", Name: "Banco da Amazônia S.A."},
		{Code: "004", Name: "Banco do Nordeste do Brasil S.A."},
		{Code: "021", Name: "Banestes S.A."},
		{Code: "033", Name: "Banco Santander (Brasil) S.A."},
		{Code: "037", Name: "Banco do Estado do Pará S.A."},
		{Code: "041", Name: "Banco do Estado do Rio Grande do Sul S.A."},
		{Code: "070", Name: "BRB - Banco de Brasília S.A."},
		{Code: "077", Name: "Banco Inter S.A."},
		{Code: "104", Name: "Caixa Econômica Federal"},
		{Code: "208", Name: "Banco BTG Pactual S.A."},
		{Code: "212", Name: "Banco Original S.A."},
		{Code: "237", Name: "Banco Bradesco S.A."},
		{Code: "260", Name: "Nu Pagamentos S.A."},
		{Code: "290", Name: "PagSeguro Internet S.A."},
		{Code: "323", Name: "Mercado Pago Instituição de Pagamento Ltda."},
		{Code: "336", Name: "Banco C6 S.A."},
		{Code: "341", Name: "Itaú Unibanco S.A."},
		{Code: "380", Name: "PicPay Instituição de Pagamento S.A."},
		{Code: "389", Name: "Banco Mercantil do Brasil S.A."},
		{Code: "422", Name: "Banco Safra S.A."},
		{Code: "633", Name: "Banco Rendimento S.A."},
		{Code: "655", Name: "Banco Votorantim S.A."},
		{Code: "707", Name: "Banco Daycoval S.A."},
		{Code: "745", Name: "Banco Citibank S.A."},
		{Code: "748", Name: "Banco Cooperativo Sicredi S.A."},
		{Code: "756", Name: "Banco Cooperativo Sicoob S.A."},
	}
}
