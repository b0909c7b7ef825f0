// Command pctriebench loads a routing table dump and times longest-prefix-
// match lookups against it, the way you'd sanity-check a FIB implementation
// against a real table before trusting it in anything that forwards
// packets.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/addrs-go/pctrie"
)

func main() {
	dumpFile := flag.String("routes", "", "path to a routing dump (\"A.B.C.D/L next-hop\" per line)")
	probes := flag.Int("probes", 1_000_000, "number of random lookups to time")
	seed := flag.Int64("seed", 1, "seed for the probe address generator")
	flag.Parse()

	if *dumpFile == "" {
		log.Fatal("pctriebench: -routes is required")
	}

	trie, n, err := loadRoutes(*dumpFile)
	if err != nil {
		log.Fatalf("pctriebench: %v", err)
	}
	fmt.Printf("loaded %d routes\n", n)

	r := rand.New(rand.NewSource(*seed))
	addrs := make([]uint32, *probes)
	for i := range addrs {
		addrs[i] = r.Uint32()
	}

	var hits int
	start := time.Now()
	for _, probe := range addrs {
		if _, ok := trie.Lookup(probe); ok {
			hits++
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("%d lookups in %s (%.0f ns/op), %d hits\n",
		len(addrs), elapsed, float64(elapsed.Nanoseconds())/float64(len(addrs)), hits)
}

// loadRoutes parses lines of the form "A.B.C.D/L next-hop" and inserts each
// prefix into a fresh Trie, using the count of routes loaded before it as
// the stored value since the next-hop column isn't meaningful to a
// lookup-throughput benchmark. Blank, comment and unparsable lines are
// skipped and not counted.
func loadRoutes(path string) (*ipv4.Trie, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	trie := ipv4.NewTrie()
	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		prefix, err := ipv4.ParsePrefix(fields[0])
		if err != nil {
			continue
		}
		addr, mask := prefix.Uint32()
		key := addr & mask
		if err := trie.InsertOrUpdate(key, prefix.Length(), n); err != nil {
			continue
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return trie, n, nil
}
