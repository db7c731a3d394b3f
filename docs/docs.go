// Package docs registers the OpenAPI document with swag so that echo-swagger can
// serve it at /swagger/doc.json.
package docs

import (
	"sync"

	"orderdesk/internal/generated/servers"

	"github.com/swaggo/swag"
)

type openAPIDoc struct {
	once sync.Once
	doc  string
}

// ReadDoc renders api/openapi.yml as JSON on first use.
func (d *openAPIDoc) ReadDoc() string {
	d.once.Do(func() {
		swagger, err := servers.GetSwagger()
		if err != nil {
			d.doc = "{}"
			return
		}
		raw, err := swagger.MarshalJSON()
		if err != nil {
			d.doc = "{}"
			return
		}
		d.doc = string(raw)
	})
	return d.doc
}

func init() {
	swag.Register(swag.Name, &openAPIDoc{})
}
