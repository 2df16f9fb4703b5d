// Package docs registra a especificação Swagger servida em /swagger/.
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
        "/auth/register": {
            "post": {
                "tags": ["users"],
                "summary": "Registra um novo operador",
                "description": "Cria um operador com senha em bcrypt. O primeiro operador cadastrado vira admin.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "registration", "required": true, "schema": {"$ref": "#/definitions/domain.UserRegistration"}}
                ],
                "responses": {
                    "201": {"description": "Operador criado com sucesso", "schema": {"$ref": "#/definitions/domain.PublicUser"}},
                    "400": {"description": "Payload inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "409": {"description": "Email já cadastrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["users"],
                "summary": "Autentica um operador e retorna um JWT",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "login", "required": true, "schema": {"$ref": "#/definitions/user.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Token JWT emitido", "schema": {"$ref": "#/definitions/user.LoginResponse"}},
                    "401": {"description": "Credenciais inválidas", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/products": {
            "get": {
                "tags": ["products"],
                "summary": "Lista os produtos",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "query", "name": "sellable", "type": "boolean", "description": "Somente produtos com estoque > 0"}
                ],
                "responses": {
                    "200": {"description": "Produtos", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Product"}}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["products"],
                "summary": "Cadastra um produto",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "product", "required": true, "schema": {"$ref": "#/definitions/domain.ProductInput"}}
                ],
                "responses": {
                    "201": {"description": "Produto criado", "schema": {"$ref": "#/definitions/domain.Product"}},
                    "400": {"description": "Campos obrigatórios ausentes ou valores negativos", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "401": {"description": "Token ausente ou inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/products/{id}": {
            "get": {
                "tags": ["products"],
                "summary": "Obtém um produto por ID",
                "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Produto encontrado", "schema": {"$ref": "#/definitions/domain.Product"}},
                    "404": {"description": "Produto não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["products"],
                "summary": "Exclui um produto",
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {
                    "204": {"description": "Produto excluído"},
                    "403": {"description": "Somente admin", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "Produto não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/products/{id}/stock": {
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["stock"],
                "summary": "Ajusta o estoque de um produto",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "required": true, "type": "string"},
                    {"in": "body", "name": "adjustment", "required": true, "schema": {"$ref": "#/definitions/domain.StockAdjustmentRequest"}}
                ],
                "responses": {
                    "200": {"description": "Produto atualizado", "schema": {"$ref": "#/definitions/domain.Product"}},
                    "400": {"description": "Quantidade inválida", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "Produto não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/stock": {
            "get": {
                "tags": ["stock"],
                "summary": "Tabela de estoque",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Níveis de estoque", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.StockLevel"}}}
                }
            }
        },
        "/sales": {
            "get": {
                "tags": ["sales"],
                "summary": "Lista as vendas",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Histórico de vendas", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Sale"}}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["sales"],
                "summary": "Registra uma venda",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "sale", "required": true, "schema": {"$ref": "#/definitions/sale.CreateSaleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Venda registrada", "schema": {"$ref": "#/definitions/domain.Sale"}},
                    "400": {"description": "Dados inválidos", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "Produto não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "422": {"description": "Estoque insuficiente", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "tags": ["dashboard"],
                "summary": "Números do dashboard",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Resumo", "schema": {"$ref": "#/definitions/domain.Dashboard"}}
                }
            }
        },
        "/charts": {
            "get": {
                "tags": ["charts"],
                "summary": "Todas as séries",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Séries", "schema": {"$ref": "#/definitions/domain.Charts"}}
                }
            }
        },
        "/charts/{name}": {
            "get": {
                "tags": ["charts"],
                "summary": "Uma série",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "name", "required": true, "type": "string", "enum": ["daily-sales", "top-products", "stock", "cumulative-revenue"]}
                ],
                "responses": {
                    "200": {"description": "Série", "schema": {"$ref": "#/definitions/domain.Series"}},
                    "404": {"description": "Gráfico desconhecido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer", "example": 422},
                "category": {"type": "string", "example": "INSUFFICIENT_STOCK"},
                "message": {"type": "string"}
            }
        },
        "domain.UserRegistration": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "domain.PublicUser": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "user"]},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "user.LoginRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "user.LoginResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}}
        },
        "domain.ProductInput": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "category": {"type": "string"},
                "unit_price": {"type": "number", "example": 10.5},
                "initial_stock": {"type": "integer"}
            }
        },
        "domain.Product": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "category": {"type": "string"},
                "unit_price": {"type": "number"},
                "stock_quantity": {"type": "integer"},
                "registered_at": {"type": "string", "format": "date-time"}
            }
        },
        "domain.StockAdjustmentRequest": {
            "type": "object",
            "properties": {"quantity": {"type": "string", "example": "12"}}
        },
        "domain.StockLevel": {
            "type": "object",
            "properties": {
                "product_id": {"type": "string"},
                "name": {"type": "string"},
                "stock_quantity": {"type": "integer"},
                "minimum": {"type": "integer", "example": 5},
                "status": {"type": "string", "enum": ["out_of_stock", "low_stock", "normal"]}
            }
        },
        "sale.CreateSaleRequest": {
            "type": "object",
            "properties": {
                "customer": {"type": "string", "example": "Ana"},
                "product_ids": {"type": "array", "items": {"type": "string"}},
                "quantities": {"type": "array", "items": {"type": "integer"}},
                "quantities_text": {"type": "string", "example": "3, 2"}
            }
        },
        "domain.LineItem": {
            "type": "object",
            "properties": {
                "product_id": {"type": "string"},
                "product_name": {"type": "string"},
                "quantity": {"type": "integer"},
                "unit_price": {"type": "number"},
                "subtotal": {"type": "number"}
            }
        },
        "domain.Sale": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "customer": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.LineItem"}},
                "total": {"type": "number"},
                "occurred_at": {"type": "string", "format": "date-time"},
                "status": {"type": "string", "example": "Completed"}
            }
        },
        "domain.Dashboard": {
            "type": "object",
            "properties": {
                "product_count": {"type": "integer"},
                "total_stock_units": {"type": "integer"},
                "sales_this_month": {"type": "integer"},
                "total_revenue": {"type": "number"},
                "total_revenue_formatted": {"type": "string", "example": "R$ 10.00"},
                "low_stock_count": {"type": "integer"},
                "out_of_stock_count": {"type": "integer"}
            }
        },
        "domain.Series": {
            "type": "object",
            "properties": {
                "labels": {"type": "array", "items": {"type": "string"}},
                "values": {"type": "array", "items": {"type": "number"}},
                "colors": {"type": "array", "items": {"type": "string"}}
            }
        },
        "domain.Charts": {
            "type": "object",
            "properties": {
                "daily_sales": {"$ref": "#/definitions/domain.Series"},
                "top_products": {"$ref": "#/definitions/domain.Series"},
                "stock_snapshot": {"$ref": "#/definitions/domain.Series"},
                "cumulative_revenue": {"$ref": "#/definitions/domain.Series"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo guarda as informações exportadas do Swagger.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "GoVendas API",
	Description:      "Controle de estoque e vendas: produtos, vendas, dashboard e séries de gráficos.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
