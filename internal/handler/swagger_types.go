package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Example Payloads ---

// ExampleIndividualRecord documents the shape of an individual (tcli 1) bkcli record.
type ExampleIndividualRecord struct {
	CLI  string `json:"cli" example:"0012345"`
	TCLI string `json:"tcli" example:"1"`
	Age  string `json:"age" example:"00101"`
	NID  string `json:"nid" example:"BE785412"`
	NMER string `json:"nmer" example:"BENNANI"`
	DNA  string `json:"dna" example:"1984-06-21"`
	NAT  string `json:"nat" example:"MA"`
	NOM  string `json:"nom" example:"ALAOUI"`
	PRE  string `json:"pre" example:"YASMINE"`
	SEXT string `json:"sext" example:"F"`
	VILN string `json:"viln" example:"RABAT"`
	PAYN string `json:"payn" example:"MA"`
	TID  string `json:"tid" example:"CIN"`
	VID  string `json:"vid" example:"2031-02-28"`
}

// ExampleLegalEntityRecord documents the shape of a corporate (tcli 2) or institutional
// (tcli 3) bkcli record.
type ExampleLegalEntityRecord struct {
	CLI    string `json:"cli" example:"0098765"`
	TCLI   string `json:"tcli" example:"2"`
	Age    string `json:"age" example:"00204"`
	RSO    string `json:"rso" example:"ATLAS NEGOCE SARL"`
	SIG    string `json:"sig" example:"ATN"`
	NRC    string `json:"nrc" example:"MA45871"`
	DATC   string `json:"datc" example:"2009-11-03"`
	SEC    string `json:"sec" example:"COMMERCE"`
	FJU    string `json:"fju" example:"SARL"`
	CATN   string `json:"catn" example:"PME"`
	LIENBQ string `json:"lienbq" example:"CLIENT"`
}

// --- Response Types ---

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database,omitempty" example:"connected"`
	Cache    string `json:"cache,omitempty" example:"connected"`
	Error    string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// PagedResponse wraps a paginated successful response.
type PagedResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data"`
	Meta    PagMeta     `json:"meta"`
}

// ErrorResponse wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
