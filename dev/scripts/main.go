package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
)

func printScripts() {
	fmt.Println("Scripts:")
	for key := range scriptMap {
		fmt.Println("\t" + key)
	}
}

func main() {
	flag.Parse()

	script := flag.Arg(0)
	fn, ok := scriptMap[script]
	if !ok {
		fmt.Printf(
			"you must specify a valid script, '%s' is not a valid script.\n",
			script,
		)
		printScripts()
		os.Exit(1)
	}

	fn()
}

func cmd(dir, name string, args ...string) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	fullCmd := name
	for _, a := range args {
		fullCmd += " "
		fullCmd += a
	}

	fmt.Printf("$ %s\n", fullCmd)
	err := cmd.Run()
	if err != nil {
		os.Exit(1)
	}
}

var scriptMap = map[string]func(){
	"db:generate": generateQueries,
	"db:serve":    serveLibsql,
}

func generateQueries() {
	cmd("internal/db", "sqlc", "generate")
}

// serveLibsql starts a local libsql server on :8080 backed by the dev
// database, point database.url at http://127.0.0.1:8080 to use it.
func serveLibsql() {
	cmd(".", "turso", "dev", "--db-file", "dev/.state/linkedin.db")
}
