package routes

import (
	"decora_ambientes/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathDeposits = "/deposits"
	PathBalances = "/balances"
)

func addQuotationRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, ledgerHandler *handlers.LedgerHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.RequestQuote)
	}

	deposits := rg.Group(PathDeposits)
	{
		deposits.POST("", ledgerHandler.RegisterDeposit)
	}

	balances := rg.Group(PathBalances)
	{
		balances.GET("/:name", ledgerHandler.GetBalance)
	}
}
