package graph

import (
	"encoding/json"
	"net/http"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// NewHandler serves schema over HTTP. POST bodies carry
// {"query", "operationName", "variables"}; GET takes the same names as
// query parameters, with variables JSON-encoded, and only runs queries.
func NewHandler(schema *graphql.Schema) http.Handler {
	return &handler{schema: schema, post: &relay.Handler{Schema: schema}}
}

type handler struct {
	schema *graphql.Schema
	post   *relay.Handler
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.post.ServeHTTP(w, r)
		return
	}

	params := r.URL.Query()
	query, operationName := params.Get("query"), params.Get("operationName")

	var variables map[string]interface{}
	if raw := params.Get("variables"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &variables); err != nil {
			http.Error(w, "variables must be a JSON object", http.StatusBadRequest)
			return
		}
	}

	if mutatesOverGet(query, operationName) {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "mutations require POST", http.StatusMethodNotAllowed)
		return
	}

	response := h.schema.Exec(r.Context(), query, operationName, variables)
	body, err := json.Marshal(response)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// mutatesOverGet reports whether the operation that would run is not a
// query. Unparsable documents are left to Exec to report.
func mutatesOverGet(query, operationName string) bool {
	doc, err := parser.ParseQuery(&ast.Source{Input: query})
	if err != nil {
		return false
	}
	for _, op := range doc.Operations {
		if operationName != "" && op.Name != operationName {
			continue
		}
		if op.Operation != ast.Query {
			return true
		}
	}
	return false
}

// Playground serves the GraphQL Playground UI pointed at endpoint.
func Playground(endpoint string) http.Handler {
	return playground.Handler("Book Catalog", endpoint)
}
