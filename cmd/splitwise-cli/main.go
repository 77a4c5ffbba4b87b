// splitwise-cli is the interactive line client: it forwards each stdin
// line to the server and prints the response, which may span several
// lines but always arrives as a single write.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"net"
	"os"
	"strings"
)

const responseBufferSize = 4096

func main() {
	addr := flag.String("a", "localhost:1234", "server address and port")
	flag.Parse()

	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "can't connect to %s: %v\n", *addr, err)
		os.Exit(1)
	}
	defer conn.Close()

	in := bufio.NewScanner(os.Stdin)
	reply := make([]byte, responseBufferSize)

	for in.Scan() {
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		if _, err := fmt.Fprintln(conn, line); err != nil {
			fmt.Fprintf(os.Stderr, "connection lost: %v\n", err)
			os.Exit(1)
		}

		n, err := conn.Read(reply)
		if err != nil {
			fmt.Fprintln(os.Stderr, "connection closed by server")
			os.Exit(1)
		}
		fmt.Println(strings.TrimRight(string(reply[:n]), "\n"))

		if line == "quit" {
			return
		}
	}
}
