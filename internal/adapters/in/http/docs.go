package http

import (
	"fmt"
	"sync"

	"fooddelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

var registerDocsOnce sync.Once

// RegisterDocs serves the embedded OpenAPI document and Swagger UI under
// /swagger/. The document is the one requests are validated against.
func RegisterDocs(e *echo.Echo) error {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return fmt.Errorf("load openapi document: %w", err)
	}
	doc, err := swagger.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode openapi document: %w", err)
	}

	registerDocsOnce.Do(func() {
		swag.Register(swag.Name, &swag.Spec{
			Version:          swagger.Info.Version,
			Title:            swagger.Info.Title,
			Description:      swagger.Info.Description,
			BasePath:         "/api/v1",
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(doc),
			LeftDelim:        "{{",
			RightDelim:       "}}",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
