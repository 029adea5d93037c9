package wsdl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/wsdltools/internal/issues"
	"github.com/erraggy/wsdltools/wsdlerrors"
	"github.com/erraggy/wsdltools/xsd"
)

const userServiceWSDL = `<?xml version="1.0" encoding="UTF-8"?>
<definitions name="UserServiceDefs"
    xmlns="http://schemas.xmlsoap.org/wsdl/"
    xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
    xmlns:xsd="http://www.w3.org/2001/XMLSchema"
    xmlns:tns="urn:users"
    targetNamespace="urn:users">
  <types>
    <xsd:schema targetNamespace="urn:users">
      <xsd:element name="GetUserRequest">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="id" type="xsd:string"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="GetUserResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="name" type="xsd:string"/>
            <xsd:element name="age" type="xsd:int" minOccurs="0"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:complexType name="UserFault">
        <xsd:sequence>
          <xsd:element name="reason" type="xsd:string"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:element name="PingRequest" type="xsd:string"/>
    </xsd:schema>
  </types>
  <message name="GetUserInput">
    <part name="body" element="tns:GetUserRequest"/>
  </message>
  <message name="GetUserOutput">
    <part name="body" element="tns:GetUserResponse"/>
  </message>
  <message name="GetUserFaultMsg">
    <part name="fault" type="tns:UserFault"/>
  </message>
  <message name="PingInput">
    <part name="body" element="tns:PingRequest"/>
  </message>
  <portType name="UserPortType">
    <operation name="GetUser">
      <documentation>Fetches a user by id.</documentation>
      <input message="tns:GetUserInput"/>
      <output message="tns:GetUserOutput"/>
      <fault name="UserFault" message="tns:GetUserFaultMsg"/>
    </operation>
    <operation name="Ping">
      <input message="tns:PingInput"/>
    </operation>
  </portType>
  <binding name="UserBinding" type="tns:UserPortType">
    <soap:binding style="document" transport="http://schemas.xmlsoap.org/soap/http"/>
    <operation name="GetUser">
      <soap:operation soapAction="urn:users#GetUser"/>
    </operation>
    <operation name="Ping">
      <soap:operation soapAction="urn:users#Ping"/>
    </operation>
  </binding>
  <service name="UserService">
    <documentation>Manages user accounts.</documentation>
    <port name="UserPort" binding="tns:UserBinding">
      <soap:address location="https://api.example.com/users"/>
    </port>
  </service>
</definitions>`

// parseAndResolve parses a WSDL document and resolves its embedded schemas.
func parseAndResolve(t *testing.T, doc string) (*Definitions, *xsd.Graph) {
	t.Helper()
	defs, err := ParseBytes([]byte(doc))
	require.NoError(t, err)
	graph, _, err := xsd.Resolve(defs.Schemas)
	require.NoError(t, err)
	return defs, graph
}

func TestParseBytes(t *testing.T) {
	defs, err := ParseBytes([]byte(userServiceWSDL))
	require.NoError(t, err)

	assert.Equal(t, "UserServiceDefs", defs.Name)
	assert.Equal(t, "urn:users", defs.TargetNamespace)
	require.Len(t, defs.Schemas, 1)
	assert.Len(t, defs.Messages, 4)
	require.Len(t, defs.PortTypes, 1)
	assert.Len(t, defs.PortTypes[0].Operations, 2)
	require.Len(t, defs.Bindings, 1)
	require.Len(t, defs.Services, 1)

	// SOAP extension elements decode alongside their WSDL parents
	bind := defs.Bindings[0]
	require.NotNil(t, bind.SOAP)
	assert.Equal(t, "document", bind.SOAP.Style)
	require.Len(t, bind.Operations, 2)
	require.NotNil(t, bind.Operations[0].SOAP)
	assert.Equal(t, "urn:users#GetUser", bind.Operations[0].SOAP.SOAPAction)

	port := defs.Services[0].Ports[0]
	require.NotNil(t, port.Address)
	assert.Equal(t, "https://api.example.com/users", port.Address.Location)
}

func TestParseBytesMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"truncated", "<definitions><message"},
		{"wrong root", "<notwsdl/>"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBytes([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, wsdlerrors.ErrParse))
		})
	}
}

func TestBuildModel(t *testing.T) {
	defs, graph := parseAndResolve(t, userServiceWSDL)

	model, warnings, err := BuildModel(defs, graph)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, "UserService", model.Service)
	assert.Equal(t, "Manages user accounts.", model.Doc)
	assert.Equal(t, "urn:users", model.TargetNamespace)

	require.Len(t, model.Operations, 2)
	getUser := model.Operations[0]
	assert.Equal(t, "GetUser", getUser.Name)
	assert.Equal(t, "Fetches a user by id.", getUser.Doc)
	assert.Equal(t, "urn:users#GetUser", getUser.SOAPAction)
	assert.Equal(t, "document", getUser.Style)

	require.NotNil(t, getUser.Input)
	assert.Equal(t, "GetUserInput", getUser.Input.Message)
	in, ok := getUser.Input.SinglePart()
	require.True(t, ok)
	assert.Equal(t, "GetUserRequest", in.Name)

	require.NotNil(t, getUser.Output)
	out, ok := getUser.Output.SinglePart()
	require.True(t, ok)
	assert.Equal(t, "GetUserResponse", out.Name)

	require.Len(t, getUser.Faults, 1)
	assert.Equal(t, "UserFault", getUser.Faults[0].Name)
	fault, ok := getUser.Faults[0].Payload.SinglePart()
	require.True(t, ok)
	assert.Equal(t, "UserFault", fault.Name)

	// One-way operation has input only
	ping := model.Operations[1]
	assert.Equal(t, "Ping", ping.Name)
	require.NotNil(t, ping.Input)
	assert.Nil(t, ping.Output)

	require.Len(t, model.Endpoints, 1)
	ep := model.Endpoints[0]
	assert.Equal(t, "UserService", ep.Service)
	assert.Equal(t, "UserPort", ep.Port)
	assert.Equal(t, "UserBinding", ep.Binding)
	assert.Equal(t, "https://api.example.com/users", ep.Location)
}

func TestBuildModelBindingStyle(t *testing.T) {
	const doc = `<?xml version="1.0" encoding="UTF-8"?>
<definitions name="StyleSvc"
    xmlns="http://schemas.xmlsoap.org/wsdl/"
    xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
    xmlns:xsd="http://www.w3.org/2001/XMLSchema"
    xmlns:tns="urn:style"
    targetNamespace="urn:style">
  <message name="DoInput">
    <part name="body" type="xsd:string"/>
  </message>
  <portType name="StylePort">
    <operation name="Do">
      <input message="tns:DoInput"/>
    </operation>
    <operation name="Other">
      <input message="tns:DoInput"/>
    </operation>
    <operation name="Unbound">
      <input message="tns:DoInput"/>
    </operation>
  </portType>
  <binding name="StyleBinding" type="tns:StylePort">
    <soap:binding style="rpc" transport="http://schemas.xmlsoap.org/soap/http"/>
    <operation name="Do">
      <soap:operation soapAction="urn:style#Do" style="document"/>
    </operation>
    <operation name="Other"/>
  </binding>
</definitions>`

	defs, err := ParseBytes([]byte(doc))
	require.NoError(t, err)
	graph, _, err := xsd.Resolve(nil)
	require.NoError(t, err)

	model, warnings, err := BuildModel(defs, graph)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	styles := make(map[string]string, len(model.Operations))
	for _, op := range model.Operations {
		styles[op.Name] = op.Style
	}
	// soap:operation style overrides the soap:binding default
	assert.Equal(t, "document", styles["Do"])
	assert.Equal(t, "rpc", styles["Other"])
	// Operations missing from the binding assume document style
	assert.Equal(t, DefaultStyle, styles["Unbound"])
}

func TestBuildModelUnmatchedBinding(t *testing.T) {
	const doc = `
		<definitions name="Svc" targetNamespace="urn:t">
		  <binding name="Orphan" type="tns:NoSuchPortType"/>
		</definitions>`

	defs, err := ParseBytes([]byte(doc))
	require.NoError(t, err)
	graph, _, err := xsd.Resolve(nil)
	require.NoError(t, err)

	model, warnings, err := BuildModel(defs, graph)
	require.NoError(t, err)
	require.NotNil(t, model)

	require.Len(t, warnings, 1)
	assert.Equal(t, issues.CodeUnmatchedBinding, warnings[0].Code)
	assert.Equal(t, "tns:NoSuchPortType", warnings[0].Value)
}

func TestBuildModelMissingOutputMessage(t *testing.T) {
	const doc = `
		<definitions name="Svc" targetNamespace="urn:t"
		    xmlns:xsd="http://www.w3.org/2001/XMLSchema" xmlns:tns="urn:t">
		  <types>
		    <xsd:schema>
		      <xsd:element name="Req" type="xsd:string"/>
		    </xsd:schema>
		  </types>
		  <message name="In">
		    <part name="body" element="tns:Req"/>
		  </message>
		  <portType name="PT">
		    <operation name="Do">
		      <input message="tns:In"/>
		      <output message="tns:Vanished"/>
		    </operation>
		  </portType>
		</definitions>`

	defs, graph := parseAndResolve(t, doc)

	model, warnings, err := BuildModel(defs, graph)
	require.NoError(t, err)

	require.Len(t, warnings, 1)
	assert.Equal(t, issues.CodeMissingOutputMessage, warnings[0].Code)

	// The operation degrades to one-way instead of failing
	require.Len(t, model.Operations, 1)
	assert.NotNil(t, model.Operations[0].Input)
	assert.Nil(t, model.Operations[0].Output)
}

func TestBuildModelUnknownInputMessage(t *testing.T) {
	const doc = `
		<definitions name="Svc" targetNamespace="urn:t" xmlns:tns="urn:t">
		  <portType name="PT">
		    <operation name="Do">
		      <input message="tns:Nowhere"/>
		    </operation>
		  </portType>
		</definitions>`

	defs, err := ParseBytes([]byte(doc))
	require.NoError(t, err)
	graph, _, err := xsd.Resolve(nil)
	require.NoError(t, err)

	_, _, err = BuildModel(defs, graph)
	require.Error(t, err)
	assert.True(t, errors.Is(err, wsdlerrors.ErrParse))
}

func TestBuildModelUnknownPartType(t *testing.T) {
	const doc = `
		<definitions name="Svc" targetNamespace="urn:t" xmlns:tns="urn:t">
		  <message name="In">
		    <part name="body" element="tns:Phantom"/>
		  </message>
		  <portType name="PT">
		    <operation name="Do">
		      <input message="tns:In"/>
		    </operation>
		  </portType>
		</definitions>`

	defs, err := ParseBytes([]byte(doc))
	require.NoError(t, err)
	graph, _, err := xsd.Resolve(nil)
	require.NoError(t, err)

	_, _, err = BuildModel(defs, graph)
	require.Error(t, err)

	var resErr *wsdlerrors.ResolutionError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, wsdlerrors.ResolutionUnknownType, resErr.Kind)
	assert.Equal(t, "Phantom", resErr.Name)
}

func TestBuildModelMultiPartMessage(t *testing.T) {
	const doc = `
		<definitions name="Svc" targetNamespace="urn:t"
		    xmlns:xsd="http://www.w3.org/2001/XMLSchema" xmlns:tns="urn:t">
		  <types>
		    <xsd:schema>
		      <xsd:element name="Header" type="xsd:string"/>
		      <xsd:element name="Body" type="xsd:string"/>
		    </xsd:schema>
		  </types>
		  <message name="In">
		    <part name="header" element="tns:Header"/>
		    <part name="payload" element="tns:Body"/>
		  </message>
		  <portType name="PT">
		    <operation name="Do">
		      <input message="tns:In"/>
		    </operation>
		  </portType>
		</definitions>`

	defs, graph := parseAndResolve(t, doc)

	model, _, err := BuildModel(defs, graph)
	require.NoError(t, err)

	in := model.Operations[0].Input
	require.Len(t, in.Parts, 2)
	assert.Equal(t, "header", in.Parts[0].Name)
	assert.Equal(t, "payload", in.Parts[1].Name)
	_, single := in.SinglePart()
	assert.False(t, single)
}
