// Command setup provisions the gradebook schema and its fixed seed
// rows. It drops and recreates both tables, so it is safe to rerun.
package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/gradebook-system/internal/config"
)

var statements = []string{
	`DROP TABLE IF EXISTS assignments`,
	`DROP TABLE IF EXISTS students`,
	`CREATE TABLE students (
		id SERIAL PRIMARY KEY,
		fname TEXT NOT NULL,
		lname TEXT NOT NULL
	)`,
	`CREATE TABLE assignments (
		id SERIAL PRIMARY KEY,
		student_id INTEGER NOT NULL REFERENCES students (id),
		title TEXT NOT NULL,
		grade INTEGER NOT NULL
	)`,
	`INSERT INTO students (fname, lname) VALUES
		('Sylvia', 'Plath'),
		('Anne', 'Sexton')`,
	`INSERT INTO assignments (student_id, title, grade) VALUES
		(1, 'Essay #1', 85),
		(1, 'Poem #1', 90),
		(2, 'Short Story', 80),
		(2, 'Long Poem', 87)`,
}

func main() {
	db, err := sql.Open("pgx", config.DSN())
	if err != nil {
		log.Fatal("error connecting db: ", err)
	}
	defer db.Close()

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatal("error provisioning schema: ", err)
		}
	}

	fmt.Println("database ready: 2 students, 4 assignments")
}
