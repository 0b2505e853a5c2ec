package registry

import "github.com/vililahtevanoja/fit-parser/internal/fit/wire"

// DeveloperFieldDescriptor is one field ad-hoc-defined by a writer,
// delivered in-band via a field_description (206) data message.
type DeveloperFieldDescriptor struct {
	FieldDefinitionNumber uint8
	BaseType              wire.BaseType
	Name                  string
	Units                 string
}

// developerApp tracks one developer_data_index: its application_id (from
// a developer_data_id message, if one has arrived) and the field
// descriptors registered against it so far.
type developerApp struct {
	ApplicationID []byte
	Fields        *BaseRegistry[uint8, DeveloperFieldDescriptor]
}

// DeveloperCatalog accumulates developer-data descriptions as
// developer_data_id and field_description messages are decoded, so later
// data records carrying developer fields can be resolved to a name and
// base type. A developer field referenced before its description arrives
// decodes to raw bytes — a protocol violation in practice, but not one
// the decoder rejects (see the design notes on propagation policy).
type DeveloperCatalog struct {
	apps *BaseRegistry[uint8, *developerApp]
}

// NewDeveloperCatalog returns an empty catalog, as at the start of a new
// file.
func NewDeveloperCatalog() *DeveloperCatalog {
	return &DeveloperCatalog{apps: NewBaseRegistry[uint8, *developerApp]()}
}

func (c *DeveloperCatalog) appFor(developerDataIndex uint8) *developerApp {
	if app, ok := c.apps.Get(developerDataIndex); ok {
		return app
	}
	app := &developerApp{Fields: NewBaseRegistry[uint8, DeveloperFieldDescriptor]()}
	c.apps.Set(developerDataIndex, app)
	return app
}

// RegisterApplication records the application_id carried by a
// developer_data_id message.
func (c *DeveloperCatalog) RegisterApplication(developerDataIndex uint8, applicationID []byte) {
	c.appFor(developerDataIndex).ApplicationID = applicationID
}

// RegisterField records one field_description message's field.
func (c *DeveloperCatalog) RegisterField(developerDataIndex uint8, desc DeveloperFieldDescriptor) {
	c.appFor(developerDataIndex).Fields.Set(desc.FieldDefinitionNumber, desc)
}

// Lookup resolves a developer field to its descriptor, or false if no
// field_description has registered it yet.
func (c *DeveloperCatalog) Lookup(developerDataIndex, fieldDefinitionNumber uint8) (DeveloperFieldDescriptor, bool) {
	app, ok := c.apps.Get(developerDataIndex)
	if !ok {
		return DeveloperFieldDescriptor{}, false
	}
	return app.Fields.Get(fieldDefinitionNumber)
}

// ApplicationID returns the application_id registered for
// developerDataIndex, if any.
func (c *DeveloperCatalog) ApplicationID(developerDataIndex uint8) ([]byte, bool) {
	app, ok := c.apps.Get(developerDataIndex)
	if !ok || app.ApplicationID == nil {
		return nil, false
	}
	return app.ApplicationID, true
}
