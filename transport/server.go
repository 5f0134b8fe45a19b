package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	currencyRates "github.com/malusev998/currency-rates"
)

const serviceName = "Currency Converter API"

type (
	Config struct {
		Resolver currencyRates.Resolver
		Logger   log.Logger
		// Metrics is mounted on GET /metrics when set.
		Metrics http.Handler
	}

	handler struct {
		resolver currencyRates.Resolver
		logger   log.Logger
	}

	errorResponse struct {
		Error string                  `json:"error"`
		Code  currencyRates.ErrorKind `json:"code"`
	}

	batchRequest struct {
		From    string          `json:"from"`
		To      string          `json:"to"`
		Amounts json.RawMessage `json:"amounts"`
	}
)

// NewHandler wires every route of the converter API onto a fresh gin engine.
func NewHandler(config Config) *gin.Engine {
	logger := config.Logger

	if logger == nil {
		logger = log.NewNopLogger()
	}

	h := handler{
		resolver: config.Resolver,
		logger:   logger,
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(RequestLogging(logger), gin.Recovery())

	router.GET("/", h.health)
	router.GET("/currencies", h.listCurrencies)
	router.GET("/currencies/:code", h.currencyDetail)
	router.GET("/rate", h.rate)
	router.GET("/rates", h.rates)
	router.GET("/convert", h.convert)
	router.POST("/convert/batch", h.batchConvert)

	if config.Metrics != nil {
		router.GET("/metrics", gin.WrapH(config.Metrics))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResponse{Error: "Endpoint not found", Code: currencyRates.KindNotFound})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed", Code: currencyRates.KindNotFound})
	})

	return router
}

func (h handler) fail(c *gin.Context, err error) {
	kind := currencyRates.KindOf(err)
	status := http.StatusBadRequest

	switch kind {
	case currencyRates.KindNotFound:
		status = http.StatusNotFound
	case currencyRates.KindInternal:
		status = http.StatusInternalServerError
		level.Error(h.logger).Log("path", c.Request.URL.Path, "err", err)
		err = errors.New("internal server error")
	}

	c.JSON(status, errorResponse{Error: err.Error(), Code: kind})
}

func (h handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": serviceName,
	})
}

func (h handler) listCurrencies(c *gin.Context) {
	currencies, err := h.resolver.Currencies()

	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"currencies": currencies})
}

func (h handler) currencyDetail(c *gin.Context) {
	view, err := h.resolver.CurrencyDetail(c.Param("code"))

	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h handler) rate(c *gin.Context) {
	view, err := h.resolver.LookupRate(c.Query("from"), c.Query("to"))

	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h handler) rates(c *gin.Context) {
	view, err := h.resolver.Rebase(c.Query("base"))

	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h handler) convert(c *gin.Context) {
	view, err := h.resolver.Convert(c.Query("from"), c.Query("to"), c.Query("amount"))

	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h handler) batchConvert(c *gin.Context) {
	var request batchRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&request); err != nil {
		h.fail(c, fmt.Errorf("%w: invalid JSON body", currencyRates.ErrMissingParameter))
		return
	}

	view, err := h.resolver.BatchConvert(request.From, request.To, BatchAmounts(request.Amounts))

	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// BatchAmounts turns the raw amounts member of a batch request into resolver input.
// An absent or null member is nil, anything that is not an array is an empty list.
// Elements are passed through as their literal JSON text, so only JSON numbers parse.
func BatchAmounts(raw json.RawMessage) []string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var items []json.RawMessage

	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}

	amounts := make([]string, 0, len(items))

	for _, item := range items {
		amounts = append(amounts, string(item))
	}

	return amounts
}
