package shading

type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

func (cmd *Commands) Frame() uint64 {
	return cmd.app.frame
}

func (cmd *Commands) Logger() Logger {
	return cmd.app.Logger()
}
