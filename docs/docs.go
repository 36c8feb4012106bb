// Package docs holds the swagger spec served under /swagger. Regenerate
// with `swag init -g cmd/app/main.go` after changing handler annotations.
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
        "/send-otp": {
            "post": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Recipient",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Send OTP",
                "description": "The code is echoed in the response only when no mailer is configured.",
                "tags": [
                    "OTP"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1/auth/change-password": {
            "post": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Current and new password",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Change password",
                "tags": [
                    "Auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/v1/auth/login": {
            "post": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Login Request",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Login a user",
                "description": "Login a user with the provided credentials.",
                "tags": [
                    "Auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1/auth/refresh-token": {
            "post": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Refresh Token Request",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Refresh user token",
                "description": "Refresh user token using the provided refresh token.",
                "tags": [
                    "Auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1/auth/register": {
            "post": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Register Request",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "409": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Register a new user",
                "description": "Register a tenant or landlord account.",
                "tags": [
                    "Auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1/auth/reset-password": {
            "post": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Email, code and new password",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Reset password",
                "description": "Consumes the OTP sent by /send-otp.",
                "tags": [
                    "Auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1/likes": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Liked listing ids",
                "tags": [
                    "Like"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/v1/likes/listings": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Liked listings",
                "tags": [
                    "Like"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/v1/likes/{listingID}": {
            "post": {
                "parameters": [
                    {
                        "name": "listingID",
                        "in": "path",
                        "required": true,
                        "description": "Listing ID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Like a listing",
                "tags": [
                    "Like"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "parameters": [
                    {
                        "name": "listingID",
                        "in": "path",
                        "required": true,
                        "description": "Listing ID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Unlike a listing",
                "tags": [
                    "Like"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/v1/likes/{listingID}/toggle": {
            "post": {
                "parameters": [
                    {
                        "name": "listingID",
                        "in": "path",
                        "required": true,
                        "description": "Listing ID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Toggle like",
                "tags": [
                    "Like"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/v1/listings": {
            "post": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Listing details",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Create a listing",
                "description": "Publish a boarding house. New listings start as available.",
                "tags": [
                    "Listing"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "get": {
                "parameters": [
                    {
                        "type": "integer",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "sort_by",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "sort_dir",
                        "in": "query"
                    },
                    {
                        "name": "landlord_id",
                        "in": "query",
                        "required": false,
                        "description": "Filter by landlord",
                        "type": "string"
                    },
                    {
                        "name": "status",
                        "in": "query",
                        "required": false,
                        "description": "Filter by status",
                        "type": "string",
                        "enum": [
                            "available",
                            "reserved",
                            "occupied"
                        ]
                    },
                    {
                        "name": "type",
                        "in": "query",
                        "required": false,
                        "description": "Filter by room type",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Get all listings",
                "description": "Retrieve listings with optional landlord, status and type filters.",
                "tags": [
                    "Listing"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1/listings/search": {
            "get": {
                "parameters": [
                    {
                        "name": "q",
                        "in": "query",
                        "required": false,
                        "description": "Free text",
                        "type": "string"
                    },
                    {
                        "name": "type",
                        "in": "query",
                        "required": false,
                        "description": "Room type",
                        "type": "string"
                    },
                    {
                        "name": "location",
                        "in": "query",
                        "required": false,
                        "description": "Location substring",
                        "type": "string"
                    },
                    {
                        "name": "price_range",
                        "in": "query",
                        "required": false,
                        "description": "Price bucket",
                        "type": "string",
                        "enum": [
                            "500-2000",
                            "2001-5000",
                            "5001-up"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Search listings",
                "description": "Free-text search over name, address and type, narrowed by type, location and price range.",
                "tags": [
                    "Listing"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1/listings/{id}": {
            "get": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Listing ID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Get a listing by ID",
                "tags": [
                    "Listing"
                ],
                "produces": [
                    "application/json"
                ]
            },
            "patch": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Listing ID",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Fields to change",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Update a listing",
                "description": "Status is not editable here; it moves through reservations and make-available.",
                "tags": [
                    "Listing"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Listing ID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Delete a listing",
                "tags": [
                    "Listing"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/v1/listings/{id}/make-available": {
            "post": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Listing ID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Make a listing available",
                "tags": [
                    "Listing"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/v1/media/upload": {
            "post": {
                "parameters": [
                    {
                        "name": "file",
                        "in": "formData",
                        "required": true,
                        "description": "Image (png or jpeg)",
                        "type": "file"
                    },
                    {
                        "name": "folder",
                        "in": "formData",
                        "required": true,
                        "description": "Target folder",
                        "type": "string",
                        "enum": [
                            "listings",
                            "profiles",
                            "qr",
                            "verifications"
                        ]
                    },
                    {
                        "name": "upload_preset",
                        "in": "formData",
                        "required": false,
                        "description": "Client upload preset",
                        "type": "string"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "504": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Upload an image",
                "description": "Images wider than the configured maximum are scaled down. Uploads that exceed the deadline answer 504.",
                "tags": [
                    "Media"
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/v1/media/upload-base64": {
            "post": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Data URI and folder",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "504": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Upload a base64 image",
                "tags": [
                    "Media"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/v1/reservations": {
            "post": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Reservation details",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "409": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Reserve a listing",
                "description": "The listing keeps its status until the landlord approves.",
                "tags": [
                    "Reservation"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/v1/reservations/landlord": {
            "get": {
                "parameters": [
                    {
                        "type": "integer",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "sort_by",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "sort_dir",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Reservations for my listings",
                "tags": [
                    "Reservation"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/v1/reservations/landlord/export": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Export reservations",
                "tags": [
                    "Reservation"
                ],
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/v1/reservations/mine": {
            "get": {
                "parameters": [
                    {
                        "type": "integer",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "sort_by",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "sort_dir",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "My reservations",
                "tags": [
                    "Reservation"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/v1/reservations/{id}": {
            "get": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Reservation ID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Get a reservation",
                "tags": [
                    "Reservation"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/v1/reservations/{id}/approve": {
            "post": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Reservation ID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "409": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Approve a reservation",
                "description": "Runs in one transaction: the listing becomes reserved and the reservation is removed.",
                "tags": [
                    "Reservation"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/v1/reservations/{id}/reject": {
            "post": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Reservation ID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Reject a reservation",
                "tags": [
                    "Reservation"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/v1/users/me": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Get my profile",
                "tags": [
                    "User"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "patch": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Fields to change",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Update my profile",
                "tags": [
                    "User"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/v1/users/me/payment-info": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Get my payment info",
                "tags": [
                    "User"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/v1/users/{id}/payment-info": {
            "get": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Landlord ID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Get a landlord's payment info",
                "tags": [
                    "User"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/v1/verifications": {
            "post": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Verification details",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "409": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Submit verification",
                "tags": [
                    "Verification"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "get": {
                "parameters": [
                    {
                        "type": "integer",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "sort_by",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "sort_dir",
                        "in": "query"
                    },
                    {
                        "name": "status",
                        "in": "query",
                        "required": false,
                        "description": "Filter by status",
                        "type": "string",
                        "enum": [
                            "pending",
                            "approved",
                            "rejected"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "List verification requests",
                "tags": [
                    "Verification"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/v1/verifications/status": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Verification status",
                "description": "Status is \"not submitted\" when the landlord has never applied.",
                "tags": [
                    "Verification"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/v1/verifications/{id}/approve": {
            "post": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Verification request ID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "409": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Approve verification",
                "tags": [
                    "Verification"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/v1/verifications/{id}/reject": {
            "post": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Verification request ID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "409": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Reject verification",
                "tags": [
                    "Verification"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/verify-otp": {
            "post": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Email and code",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Verify OTP",
                "tags": [
                    "OTP"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
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
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Dormy API",
	Description:      "Boarding house listings, reservations and landlord verification.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
