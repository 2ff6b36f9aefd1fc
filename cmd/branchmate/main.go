package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/kespar/branchmate/uci"
)

var profileAddr = flag.String("profile", "", "serve pprof endpoint at this address (e.g. localhost:6060); disabled if empty")

func main() {
	flag.Parse()

	if *profileAddr != "" {
		go func() {
			log.Printf("pprof listening on http://%s/debug/pprof", *profileAddr)
			if err := http.ListenAndServe(*profileAddr, nil); err != nil {
				log.Println("pprof server:", err)
			}
		}()
	}

	i := uci.NewInterface(os.Stdin, os.Stdout)
	if err := i.Run(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
