// Package openapi defines the OpenAPI 3.0 document model emitted by the
// projector and assembled by the converter.
//
// The model is deliberately a subset of the full OpenAPI 3.0 object graph:
// it contains exactly the constructs a WSDL document can project onto
// (paths, POST operations, request/response bodies, component schemas,
// servers, tags) and nothing else. Documents are plain structs with yaml
// and json tags; marshal with go.yaml.in/yaml/v4 or any encoding/json
// compatible encoder to produce the serialized specification.
package openapi
