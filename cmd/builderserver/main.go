// The builder variant: bun select chains over table and column names.
package main

import (
	"fmt"
	"log"

	"github.com/gradebook-system/internal/config"
	"github.com/gradebook-system/internal/store/bunstore"
	"github.com/gradebook-system/internal/web"
)

func main() {
	st, err := bunstore.Open(config.DSN())
	if err != nil {
		log.Fatal("error connecting db: ", err)
	}

	app := web.NewApp(web.NewHandler(st))

	addr := config.Addr(":3001")
	fmt.Println("builder server started on", addr)
	log.Fatal(app.Listen(addr))
}
