package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/usersapi/internal/ctl"
)

func main() {
	if err := ctl.NewRootCmd(ctl.Deps{}).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
