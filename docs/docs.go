// Package docs holds the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/tax/lines": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tax"],
                "summary": "Compute line tax",
                "parameters": [{"description": "Line and jurisdiction", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.ComputeLineInput"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/tax/lines/cess": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tax"],
                "summary": "Reverse-edit line cess",
                "parameters": [{"description": "Line, current breakdown and the edited cess", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.EditCessInput"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/purchase-orders/recalculate": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["purchase-orders"],
                "summary": "Recalculate purchase-order totals",
                "parameters": [{"description": "Lines, override flags and current totals", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.RecalculateInput"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/purchase-orders/totals/edit": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["purchase-orders"],
                "summary": "Override a document total",
                "parameters": [{"description": "Totals, flags and the edited field", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.EditTotalInput"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/purchase-orders/totals/reset": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["purchase-orders"],
                "summary": "Clear an override",
                "parameters": [{"description": "Purchase order and the field to reset", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.ResetOverrideInput"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/draft-lines/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["draft-lines"],
                "summary": "Get a draft line's tax",
                "parameters": [{"type": "string", "description": "Draft line ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["draft-lines"],
                "summary": "Edit a draft line",
                "parameters": [
                    {"type": "string", "description": "Draft line ID", "name": "id", "in": "path", "required": true},
                    {"description": "Line edit", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.DraftLineRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["draft-lines"],
                "summary": "Forget a draft line",
                "parameters": [{"type": "string", "description": "Draft line ID", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No content"}}
            }
        },
        "/exports/sales/plan": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["exports"],
                "summary": "Preview the sales split plan",
                "parameters": [
                    {"type": "string", "description": "First day (YYYY-MM-DD)", "name": "from", "in": "query", "required": true},
                    {"type": "string", "description": "Last day (YYYY-MM-DD)", "name": "to", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid date range", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/exports/sales/plan.csv": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv"],
                "tags": ["exports"],
                "summary": "Download the split plan as CSV",
                "parameters": [
                    {"type": "string", "description": "First day (YYYY-MM-DD)", "name": "from", "in": "query", "required": true},
                    {"type": "string", "description": "Last day (YYYY-MM-DD)", "name": "to", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "CSV file", "schema": {"type": "file"}}}
            }
        },
        "/exports/sales/plan.xlsx": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["exports"],
                "summary": "Download the split plan as a workbook",
                "parameters": [
                    {"type": "string", "description": "First day (YYYY-MM-DD)", "name": "from", "in": "query", "required": true},
                    {"type": "string", "description": "Last day (YYYY-MM-DD)", "name": "to", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "XLSX file", "schema": {"type": "file"}}}
            }
        },
        "/exports/sales": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["exports"],
                "summary": "Export sales records",
                "parameters": [
                    {"type": "string", "description": "First day (YYYY-MM-DD)", "name": "from", "in": "query", "required": true},
                    {"type": "string", "description": "Last day (YYYY-MM-DD)", "name": "to", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid date range", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        }
    },
    "definitions": {
        "handler.APIError": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "handler.Response": {
            "type": "object",
            "properties": {"success": {"type": "boolean", "example": true}, "data": {}, "meta": {}}
        },
        "handler.ErrorResponseBody": {
            "type": "object",
            "properties": {"success": {"type": "boolean", "example": false}, "error": {"$ref": "#/definitions/handler.APIError"}}
        },
        "gst.LineItem": {
            "type": "object",
            "properties": {
                "quantity": {"type": "string", "example": "100"},
                "unit_rate": {"type": "string", "example": "90"},
                "discount_amount": {"type": "string", "example": "0"},
                "gst_rate_percent": {"type": "string", "example": "18"},
                "cess_rate_percent": {"type": "string", "example": "0"}
            }
        },
        "gst.Breakdown": {
            "type": "object",
            "properties": {
                "cgst_amount": {"type": "string"},
                "sgst_amount": {"type": "string"},
                "igst_amount": {"type": "string"},
                "cess_amount": {"type": "string"}
            }
        },
        "gst.OverrideFlags": {
            "type": "object",
            "properties": {
                "cgst": {"type": "boolean"},
                "sgst": {"type": "boolean"},
                "igst": {"type": "boolean"},
                "cess": {"type": "boolean"},
                "discount": {"type": "boolean"}
            }
        },
        "gst.DocumentTotals": {
            "type": "object",
            "properties": {
                "subtotal": {"type": "string"},
                "discount": {"type": "string"},
                "taxable_amount": {"type": "string"},
                "cgst": {"type": "string"},
                "sgst": {"type": "string"},
                "igst": {"type": "string"},
                "cess": {"type": "string"},
                "grand_total": {"type": "string"}
            }
        },
        "service.ComputeLineInput": {
            "type": "object",
            "properties": {
                "jurisdiction": {"type": "string", "enum": ["intra_state", "inter_state"]},
                "home_state_code": {"type": "string"},
                "counterparty": {"type": "string"},
                "item": {"$ref": "#/definitions/gst.LineItem"}
            }
        },
        "service.EditCessInput": {
            "type": "object",
            "properties": {
                "jurisdiction": {"type": "string", "enum": ["intra_state", "inter_state"]},
                "home_state_code": {"type": "string"},
                "counterparty": {"type": "string"},
                "item": {"$ref": "#/definitions/gst.LineItem"},
                "current": {"$ref": "#/definitions/gst.Breakdown"},
                "cess_amount": {"type": "string"},
                "cess_rate_percent": {"type": "string"}
            }
        },
        "service.DocumentLine": {
            "type": "object",
            "properties": {
                "item": {"$ref": "#/definitions/gst.LineItem"},
                "cess_amount": {"type": "string"}
            }
        },
        "service.RecalculateInput": {
            "type": "object",
            "properties": {
                "jurisdiction": {"type": "string", "enum": ["intra_state", "inter_state"]},
                "home_state_code": {"type": "string"},
                "counterparty": {"type": "string"},
                "lines": {"type": "array", "items": {"$ref": "#/definitions/service.DocumentLine"}},
                "overrides": {"$ref": "#/definitions/gst.OverrideFlags"},
                "current": {"$ref": "#/definitions/gst.DocumentTotals"}
            }
        },
        "service.ResetOverrideInput": {
            "type": "object",
            "properties": {
                "jurisdiction": {"type": "string", "enum": ["intra_state", "inter_state"]},
                "home_state_code": {"type": "string"},
                "counterparty": {"type": "string"},
                "lines": {"type": "array", "items": {"$ref": "#/definitions/service.DocumentLine"}},
                "overrides": {"$ref": "#/definitions/gst.OverrideFlags"},
                "current": {"$ref": "#/definitions/gst.DocumentTotals"},
                "field": {"type": "string", "enum": ["cgst", "sgst", "igst", "cess", "discount"]}
            }
        },
        "service.EditTotalInput": {
            "type": "object",
            "properties": {
                "totals": {"$ref": "#/definitions/gst.DocumentTotals"},
                "overrides": {"$ref": "#/definitions/gst.OverrideFlags"},
                "field": {"type": "string", "enum": ["cgst", "sgst", "igst", "cess", "discount"]},
                "value": {"type": "string"}
            }
        },
        "handler.DraftLineRequest": {
            "type": "object",
            "properties": {
                "jurisdiction": {"type": "string", "enum": ["intra_state", "inter_state"]},
                "home_state_code": {"type": "string"},
                "counterparty": {"type": "string"},
                "product_id": {"type": "string", "example": "550e8400-e29b-41d4-a716-446655440000"},
                "vendor_id": {"type": "string", "example": "660e8400-e29b-41d4-a716-446655440001"},
                "item": {"$ref": "#/definitions/gst.LineItem"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the access token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Fuelbooks API",
	Description:      "GST line tax, purchase-order reconciliation and threshold-split sales export for fuel stations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
