package main

import (
	"flag"
	"fmt"
	"os"

	"costmanager/process/report"
)

func main() {
	user := flag.String("user", "", "business user id to report for")
	month := flag.String("month", "", "month to report (YYYY-MM)")
	list := flag.Bool("list", false, "list matching cost rows")
	flag.Parse()

	if *user == "" || *month == "" {
		fmt.Fprintln(os.Stderr, "usage: go run ./process/cmd_report -user <id> -month <YYYY-MM> [-list]")
		os.Exit(2)
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "DB_DSN not set; export DB_DSN and retry")
		os.Exit(2)
	}

	report.RunReport(*user, *month, *list)
}
