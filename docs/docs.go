// Package docs holds the OpenAPI document served at /swagger.
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
		"/v1/clientes": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"clientes"
				],
				"summary": "Listar clientes",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.ClienteResponse"
							}
						}
					}
				}
			},
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"clientes"
				],
				"summary": "Crear cliente",
				"parameters": [
					{
						"description": "Valores como texto",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ClienteRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.ClienteResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/apierror.ValidationError"
						}
					}
				}
			}
		},
		"/v1/clientes/reporte.pdf": {
			"get": {
				"produces": [
					"application/pdf"
				],
				"tags": [
					"clientes"
				],
				"summary": "Listado de clientes en PDF",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					}
				}
			}
		},
		"/v1/clientes/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"clientes"
				],
				"summary": "Obtener cliente",
				"parameters": [
					{
						"type": "integer",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ClienteResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			},
			"put": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"clientes"
				],
				"summary": "Actualizar cliente",
				"description": "Solo se modifican los campos enviados.",
				"parameters": [
					{
						"type": "integer",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Valores como texto",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ClienteRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ClienteResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/apierror.ValidationError"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"clientes"
				],
				"summary": "Eliminar cliente",
				"parameters": [
					{
						"type": "integer",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			}
		},
		"/v1/mascotas": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"mascotas"
				],
				"summary": "Listar mascotas",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.MascotaResponse"
							}
						}
					}
				}
			},
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"mascotas"
				],
				"summary": "Crear mascota",
				"parameters": [
					{
						"description": "Valores como texto",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.MascotaRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.MascotaResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/apierror.ValidationError"
						}
					}
				}
			}
		},
		"/v1/mascotas/reporte.pdf": {
			"get": {
				"produces": [
					"application/pdf"
				],
				"tags": [
					"mascotas"
				],
				"summary": "Listado de mascotas en PDF",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					}
				}
			}
		},
		"/v1/mascotas/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"mascotas"
				],
				"summary": "Obtener mascota",
				"parameters": [
					{
						"type": "integer",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.MascotaResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			},
			"put": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"mascotas"
				],
				"summary": "Actualizar mascota",
				"description": "Solo se modifican los campos enviados.",
				"parameters": [
					{
						"type": "integer",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Valores como texto",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.MascotaRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.MascotaResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/apierror.ValidationError"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"mascotas"
				],
				"summary": "Eliminar mascota",
				"parameters": [
					{
						"type": "integer",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			}
		},
		"/v1/medicamentos": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"medicamentos"
				],
				"summary": "Listar medicamentos",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.MedicamentoResponse"
							}
						}
					}
				}
			},
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"medicamentos"
				],
				"summary": "Crear medicamento",
				"parameters": [
					{
						"description": "Valores como texto",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.MedicamentoRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.MedicamentoResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/apierror.ValidationError"
						}
					}
				}
			}
		},
		"/v1/medicamentos/reporte.pdf": {
			"get": {
				"produces": [
					"application/pdf"
				],
				"tags": [
					"medicamentos"
				],
				"summary": "Listado de medicamentos en PDF",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					}
				}
			}
		},
		"/v1/medicamentos/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"medicamentos"
				],
				"summary": "Obtener medicamento",
				"parameters": [
					{
						"type": "integer",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.MedicamentoResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			},
			"put": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"medicamentos"
				],
				"summary": "Actualizar medicamento",
				"description": "Solo se modifican los campos enviados.",
				"parameters": [
					{
						"type": "integer",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Valores como texto",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.MedicamentoRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.MedicamentoResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/apierror.ValidationError"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"medicamentos"
				],
				"summary": "Eliminar medicamento",
				"parameters": [
					{
						"type": "integer",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			}
		},
		"/v1/proveedores": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"proveedores"
				],
				"summary": "Listar proveedores",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.ProveedorResponse"
							}
						}
					}
				}
			},
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"proveedores"
				],
				"summary": "Crear proveedor",
				"parameters": [
					{
						"description": "Valores como texto",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ProveedorRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.ProveedorResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/apierror.ValidationError"
						}
					}
				}
			}
		},
		"/v1/proveedores/reporte.pdf": {
			"get": {
				"produces": [
					"application/pdf"
				],
				"tags": [
					"proveedores"
				],
				"summary": "Listado de proveedores en PDF",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					}
				}
			}
		},
		"/v1/proveedores/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"proveedores"
				],
				"summary": "Obtener proveedor",
				"parameters": [
					{
						"type": "integer",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ProveedorResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			},
			"put": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"proveedores"
				],
				"summary": "Actualizar proveedor",
				"description": "Solo se modifican los campos enviados.",
				"parameters": [
					{
						"type": "integer",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Valores como texto",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ProveedorRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ProveedorResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/apierror.ValidationError"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"proveedores"
				],
				"summary": "Eliminar proveedor",
				"parameters": [
					{
						"type": "integer",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			}
		},
		"/v1/productos": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"productos"
				],
				"summary": "Listar productos",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.ProductoResponse"
							}
						}
					}
				}
			},
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"productos"
				],
				"summary": "Crear producto",
				"parameters": [
					{
						"description": "Valores como texto",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ProductoRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.ProductoResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/apierror.ValidationError"
						}
					}
				}
			}
		},
		"/v1/productos/reporte.pdf": {
			"get": {
				"produces": [
					"application/pdf"
				],
				"tags": [
					"productos"
				],
				"summary": "Listado de productos en PDF",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					}
				}
			}
		},
		"/v1/productos/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"productos"
				],
				"summary": "Obtener producto",
				"parameters": [
					{
						"type": "integer",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ProductoResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			},
			"put": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"productos"
				],
				"summary": "Actualizar producto",
				"description": "Solo se modifican los campos enviados.",
				"parameters": [
					{
						"type": "integer",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Valores como texto",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ProductoRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ProductoResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/apierror.ValidationError"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"productos"
				],
				"summary": "Eliminar producto",
				"parameters": [
					{
						"type": "integer",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			}
		},
		"/v1/veterinarios": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"veterinarios"
				],
				"summary": "Listar veterinarios",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.VeterinarioResponse"
							}
						}
					}
				}
			},
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"veterinarios"
				],
				"summary": "Crear veterinario",
				"parameters": [
					{
						"description": "Valores como texto",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.VeterinarioRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.VeterinarioResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/apierror.ValidationError"
						}
					}
				}
			}
		},
		"/v1/veterinarios/reporte.pdf": {
			"get": {
				"produces": [
					"application/pdf"
				],
				"tags": [
					"veterinarios"
				],
				"summary": "Listado de veterinarios en PDF",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					}
				}
			}
		},
		"/v1/veterinarios/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"veterinarios"
				],
				"summary": "Obtener veterinario",
				"parameters": [
					{
						"type": "integer",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.VeterinarioResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			},
			"put": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"veterinarios"
				],
				"summary": "Actualizar veterinario",
				"description": "Solo se modifican los campos enviados.",
				"parameters": [
					{
						"type": "integer",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Valores como texto",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.VeterinarioRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.VeterinarioResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/apierror.ValidationError"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"veterinarios"
				],
				"summary": "Eliminar veterinario",
				"parameters": [
					{
						"type": "integer",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			}
		},
		"/v1/opciones": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"opciones"
				],
				"summary": "Opciones de formularios",
				"description": "Ciudades y especialidades aceptadas.",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.OpcionesResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"apierror.APIError": {
			"type": "object",
			"properties": {
				"detail": {
					"type": "string"
				}
			}
		},
		"apierror.ValidationError": {
			"type": "object",
			"properties": {
				"detail": {
					"type": "string"
				},
				"fields": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				}
			}
		},
		"dto.OpcionesResponse": {
			"type": "object",
			"properties": {
				"ciudades": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"especialidades": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"dto.ClienteRequest": {
			"description": "Todos los campos son texto. Un campo ausente conserva su valor al actualizar.",
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"city": {
					"type": "string"
				},
				"address": {
					"type": "string"
				}
			}
		},
		"dto.ClienteResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"city": {
					"type": "string"
				},
				"address": {
					"type": "string"
				}
			}
		},
		"dto.MascotaRequest": {
			"description": "Todos los campos son texto. Un campo ausente conserva su valor al actualizar.",
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"breed": {
					"type": "string"
				},
				"birthday": {
					"type": "string"
				},
				"weight": {
					"description": "Decimal como texto; también se acepta un número JSON",
					"type": "string",
					"example": "25.5"
				}
			}
		},
		"dto.MascotaResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"breed": {
					"type": "string"
				},
				"birthday": {
					"type": "string"
				},
				"weight": {
					"type": "string"
				}
			}
		},
		"dto.MedicamentoRequest": {
			"description": "Todos los campos son texto. Un campo ausente conserva su valor al actualizar.",
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"descripcion": {
					"type": "string"
				},
				"dosis": {
					"description": "Decimal como texto; también se acepta un número JSON",
					"type": "string",
					"example": "5"
				}
			}
		},
		"dto.MedicamentoResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"descripcion": {
					"type": "string"
				},
				"dosis": {
					"type": "integer"
				}
			}
		},
		"dto.ProveedorRequest": {
			"description": "Todos los campos son texto. Un campo ausente conserva su valor al actualizar.",
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"address": {
					"type": "string"
				}
			}
		},
		"dto.ProveedorResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"address": {
					"type": "string"
				}
			}
		},
		"dto.ProductoRequest": {
			"description": "Todos los campos son texto. Un campo ausente conserva su valor al actualizar.",
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"type": {
					"type": "string"
				},
				"price": {
					"description": "Decimal como texto; también se acepta un número JSON",
					"type": "string",
					"example": "1500.50"
				}
			}
		},
		"dto.ProductoResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"type": {
					"type": "string"
				},
				"price": {
					"type": "string"
				}
			}
		},
		"dto.VeterinarioRequest": {
			"description": "Todos los campos son texto. Un campo ausente conserva su valor al actualizar.",
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"speciality": {
					"type": "string"
				}
			}
		},
		"dto.VeterinarioResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"speciality": {
					"type": "string"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "VetSoft API",
	Description:      "Gestión de clientes, mascotas, medicamentos, proveedores, productos y veterinarios. Los valores de entrada se envían como texto.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
