// The ORM variant: GORM models with a student-to-assignments association.
package main

import (
	"fmt"
	"log"

	"github.com/gradebook-system/internal/config"
	"github.com/gradebook-system/internal/store/gormstore"
	"github.com/gradebook-system/internal/web"
)

func main() {
	st, err := gormstore.Open(config.DSN())
	if err != nil {
		log.Fatal("error connecting db: ", err)
	}

	app := web.NewApp(web.NewHandler(st))

	addr := config.Addr(":3002")
	fmt.Println("orm server started on", addr)
	log.Fatal(app.Listen(addr))
}
