// Package docs Cellmap Service API.
//
// Хороплетная карта S2 ячеек с метриками безопасности по локациям.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/locations": {
            "get": {
                "description": "Локации, присутствующие в датасете, в порядке отображения",
                "produces": ["application/json"],
                "tags": ["Viewer"],
                "summary": "List locations",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/metrics": {
            "get": {
                "description": "Все метрики с подписями",
                "produces": ["application/json"],
                "tags": ["Viewer"],
                "summary": "List metrics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}
                }
            }
        },
        "/api/v1/view": {
            "get": {
                "description": "Полигоны со стилями и попапами, легенда, заголовок и (при fit=true) границы карты",
                "produces": ["application/json"],
                "tags": ["Viewer"],
                "summary": "Compute map view",
                "parameters": [
                    {"type": "string", "default": "SAN_FRANCISCO", "description": "Location id", "name": "location", "in": "query"},
                    {"type": "string", "default": "police_reported", "description": "Metric id", "name": "metric", "in": "query"},
                    {"type": "boolean", "description": "Include viewport", "name": "fit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/cells/{location}.geojson": {
            "get": {
                "description": "FeatureCollection ячеек локации, стиль и HTML попапа в properties",
                "produces": ["application/json"],
                "tags": ["Viewer"],
                "summary": "Export location cells as GeoJSON",
                "parameters": [
                    {"type": "string", "description": "Location id", "name": "location", "in": "path", "required": true},
                    {"type": "string", "default": "police_reported", "description": "Metric id", "name": "metric", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "GeoJSON FeatureCollection", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/dataset/status": {
            "get": {
                "description": "Источник, версия и количество ячеек загруженного датасета или причина ошибки загрузки",
                "produces": ["application/json"],
                "tags": ["Viewer"],
                "summary": "Dataset load status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true},
                "message": {"type": "string"}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/errors.AppError"}
            }
        },
        "utils.Meta": {
            "type": "object",
            "properties": {
                "cached": {"type": "boolean"},
                "time_ms": {"type": "number"},
                "total": {"type": "integer"},
                "version": {"type": "string"}
            }
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "meta": {"$ref": "#/definitions/utils.Meta"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Cellmap Service API",
	Description:      "Хороплетная карта S2 ячеек с метриками безопасности по локациям.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
