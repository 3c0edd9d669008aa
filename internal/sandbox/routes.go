package sandbox

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (s *Server) registerRoutes(router *gin.Engine) {
	v2 := router.Group("/v2")
	{
		v2.GET("/categories", serveFixture("categories.json", nil))
		v2.GET("/rates/:zip", s.showRate)
		v2.POST("/taxes", s.calculateTax)

		orders := v2.Group("/transactions/orders")
		{
			orders.GET("", serveFixture("orders.json", nil))
			orders.POST("", echo("order", http.StatusCreated, "transaction_id"))
			orders.GET("/:id", serveFixture("order.json", setID("order", "transaction_id")))
			orders.PUT("/:id", echo("order", http.StatusOK, "transaction_id"))
			orders.DELETE("/:id", serveFixture("order_deleted.json", setID("order", "transaction_id")))
		}

		refunds := v2.Group("/transactions/refunds")
		{
			refunds.GET("", serveFixture("refunds.json", nil))
			refunds.POST("", echo("refund", http.StatusCreated, "transaction_id"))
			refunds.GET("/:id", serveFixture("refund.json", setID("refund", "transaction_id")))
			refunds.PUT("/:id", echo("refund", http.StatusOK, "transaction_id"))
			refunds.DELETE("/:id", serveFixture("order_deleted.json", renameEnvelope("order", "refund", "transaction_id")))
		}

		customers := v2.Group("/customers")
		{
			customers.GET("", serveFixture("customers.json", nil))
			customers.POST("", echo("customer", http.StatusCreated, "customer_id"))
			customers.GET("/:id", serveFixture("customer.json", setID("customer", "customer_id")))
			customers.PUT("/:id", echo("customer", http.StatusOK, "customer_id"))
			customers.DELETE("/:id", serveFixture("customer.json", setID("customer", "customer_id")))
		}

		v2.GET("/nexus/regions", serveFixture("nexus_regions.json", nil))
		v2.GET("/validation", s.validateVAT)
		v2.GET("/summary_rates", serveFixture("summary_rates.json", nil))
		v2.POST("/addresses/validate", serveFixture("addresses.json", nil))
	}
}

type mutator func(c *gin.Context, doc map[string]interface{}) error

func serveFixture(name string, mutate mutator) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := Fixture(name)
		if err != nil {
			writeError(c, http.StatusInternalServerError, err.Error())
			return
		}
		if mutate == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
			return
		}

		doc, err := decodeObject(raw)
		if err != nil {
			writeError(c, http.StatusInternalServerError, err.Error())
			return
		}
		if err := mutate(c, doc); err != nil {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

func setID(envelope, field string) mutator {
	return func(c *gin.Context, doc map[string]interface{}) error {
		if inner, ok := doc[envelope].(map[string]interface{}); ok {
			inner[field] = c.Param("id")
		}
		return nil
	}
}

func renameEnvelope(from, to, field string) mutator {
	return func(c *gin.Context, doc map[string]interface{}) error {
		inner, ok := doc[from].(map[string]interface{})
		if !ok {
			return fmt.Errorf("fixture has no %s", from)
		}
		inner[field] = c.Param("id")
		delete(doc, from)
		doc[to] = inner
		return nil
	}
}

// echo answers a create or update with the submitted body, as TaxJar does.
func echo(envelope string, status int, idField string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.GetRawData()
		if err != nil || len(bytes.TrimSpace(raw)) == 0 {
			writeError(c, http.StatusBadRequest, "No request body")
			return
		}
		doc, err := decodeObject(raw)
		if err != nil {
			writeError(c, http.StatusBadRequest, "Request body is not a JSON object")
			return
		}
		if id := c.Param("id"); id != "" {
			doc[idField] = id
		}
		if _, ok := doc[idField]; !ok {
			writeError(c, http.StatusBadRequest, fmt.Sprintf("%s is missing", idField))
			return
		}
		if envelope != "customer" {
			doc["user_id"] = 10649
		}
		c.JSON(status, gin.H{envelope: doc})
	}
}

func (s *Server) showRate(c *gin.Context) {
	serveFixture("rates.json", func(c *gin.Context, doc map[string]interface{}) error {
		rate, ok := doc["rate"].(map[string]interface{})
		if !ok {
			return fmt.Errorf("fixture has no rate")
		}
		rate["zip"] = c.Param("zip")
		for _, key := range []string{"country", "state", "city"} {
			if v := c.Query(key); v != "" {
				rate[key] = strings.ToUpper(v)
			}
		}
		return nil
	})(c)
}

func (s *Server) validateVAT(c *gin.Context) {
	if c.Query("vat") == "" {
		writeError(c, http.StatusBadRequest, "vat is missing")
		return
	}
	serveFixture("validation.json", nil)(c)
}

type taxRequest struct {
	ToCountry string       `json:"to_country"`
	Shipping  *json.Number `json:"shipping"`
	LineItems []struct {
		ID string `json:"id"`
	} `json:"line_items"`
}

// calculateTax picks a fixture by destination country and numbers the line
// item breakdowns after the submitted line items.
func (s *Server) calculateTax(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		writeError(c, http.StatusBadRequest, "No request body")
		return
	}
	var req taxRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		writeError(c, http.StatusBadRequest, "Request body is not a JSON object")
		return
	}
	if req.Shipping == nil {
		writeError(c, http.StatusBadRequest, "shipping is missing")
		return
	}

	name := "taxes_international.json"
	switch strings.ToUpper(req.ToCountry) {
	case "", "US":
		name = "taxes.json"
	case "CA":
		name = "taxes_canada.json"
	}

	serveFixture(name, func(c *gin.Context, doc map[string]interface{}) error {
		if len(req.LineItems) == 0 {
			return nil
		}
		tax, _ := doc["tax"].(map[string]interface{})
		breakdown, _ := tax["breakdown"].(map[string]interface{})
		items, _ := breakdown["line_items"].([]interface{})
		if len(items) == 0 {
			return nil
		}
		template, _ := items[0].(map[string]interface{})

		out := make([]interface{}, 0, len(req.LineItems))
		for i, item := range req.LineItems {
			copied := make(map[string]interface{}, len(template))
			for k, v := range template {
				copied[k] = v
			}
			id := item.ID
			if id == "" {
				id = fmt.Sprintf("%d", i+1)
			}
			copied["id"] = id
			out = append(out, copied)
		}
		breakdown["line_items"] = out
		return nil
	})(c)
}

func decodeObject(raw []byte) (map[string]interface{}, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var doc map[string]interface{}
	if err := decoder.Decode(&doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("not a JSON object")
	}
	return doc, nil
}
