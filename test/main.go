package main

import (
	"fmt"

	"github.com/terror/arrg/core"
	"github.com/terror/arrg/display"
	"github.com/terror/arrg/schema"
)

func buildApp() *schema.Command {
	serve := schema.New("serve")
	serve.MustAddField(schema.NewFlag("port", schema.Int(), "--port").WithDefault(int64(8080)).WithHelp("Port to run the server on"))
	serve.MustAddField(schema.NewFlag("verbose", schema.Bool(), "-v", "--verbose").WithHelp("Enable verbose output"))

	app := schema.New("app").WithVersion("0.1.0")
	app.MustAddField(schema.NewFlag("config", schema.Path(), "-c", "--config").WithHelp("Config file path"))
	app.MustAddCommand(serve)
	return app
}

func main() {
	display.Main(buildApp(), func(result *core.Result) error {
		if serve := result.Command("serve"); serve != nil {
			fmt.Printf("serving on port %d (verbose=%v)\n",
				serve.Value("port"), serve.Value("verbose"))
			return nil
		}
		fmt.Printf("parsed: %+v\n", result.Values)
		return nil
	})
}
