// The raw variant: parameterized SQL over database/sql and pgx.
package main

import (
	"fmt"
	"log"

	"github.com/gradebook-system/internal/config"
	"github.com/gradebook-system/internal/store/rawstore"
	"github.com/gradebook-system/internal/web"
)

func main() {
	st, err := rawstore.Open(config.DSN())
	if err != nil {
		log.Fatal("error connecting db: ", err)
	}

	app := web.NewApp(web.NewHandler(st))

	addr := config.Addr(":3000")
	fmt.Println("raw server started on", addr)
	log.Fatal(app.Listen(addr))
}
