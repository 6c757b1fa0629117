package shading

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name string
}
type MockResource2 struct {
	name string
}

func NewMockResource1(name string) *MockResource1 {
	return &MockResource1{name: name}
}
func NewMockResource2(name string) *MockResource2 {
	return &MockResource2{name: name}
}

func TestApp_addResources(t *testing.T) {
	app := NewApp()

	resource1 := NewMockResource1("Resource1")
	app.addResources(resource1)
	assert.Contains(t, app.resources, reflect.TypeOf(resource1).Elem(), "Resource1 should be in resources map.")

	require.PanicsWithValue(t, fmt.Sprintf("%s is already in resources", reflect.TypeOf(resource1)), func() {
		app.addResources(resource1)
	})

	resource2 := NewMockResource2("Resource2")
	app.addResources(resource2)
	got, ok := Resource[MockResource2](app)
	require.True(t, ok)
	assert.Same(t, resource2, got)

	require.Panics(t, func() { app.addResources(MockResource1{}) })
}

func TestApp_SystemsReceiveResources(t *testing.T) {
	app := NewApp()
	res := NewMockResource1("counter")
	app.addResources(res)

	var frames []uint64
	app.UseSystem(System(func(cmd *Commands, r *MockResource1) {
		frames = append(frames, cmd.Frame())
		r.name = "touched"
	}))

	app.Run(3)
	assert.Equal(t, []uint64{1, 2, 3}, frames)
	assert.Equal(t, "touched", res.name)
}

func TestApp_StagesRunInOrder(t *testing.T) {
	app := NewApp()
	var order []string
	app.UseSystem(System(func() { order = append(order, "render") }).InStage(Render))
	app.UseSystem(System(func() { order = append(order, "update") }).InStage(Update))

	custom := Stage{Name: "Upload"}
	app.UseStage(custom, AfterStage(Render))
	app.UseSystem(System(func() { order = append(order, "upload") }).InStage(custom))

	app.Step()
	assert.Equal(t, []string{"update", "render", "upload"}, order)

	require.Panics(t, func() { app.UseStage(Stage{Name: "x"}, BeforeStage(Stage{Name: "missing"})) })
	require.Panics(t, func() { app.UseSystem(System(func() {}).InStage(Stage{Name: "missing"})) })
}

func TestApp_UnresolvedDependencyPanics(t *testing.T) {
	app := NewApp()
	app.UseSystem(System(func(r *MockResource2) {}))
	require.Panics(t, app.Step)
}

func TestApp_LoggerFallsBackToNop(t *testing.T) {
	var app *App
	assert.NotNil(t, app.Logger())
	assert.NotNil(t, NewApp().Logger())

	app = NewApp().UseModules(LoggingModule{Prefix: "test", Debug: true})
	assert.True(t, app.Logger().DebugEnabled())
}
