package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"go.lepak.sg/splaytree/must"
	"go.lepak.sg/splaytree/splay"
	"go.lepak.sg/splaytree/splay/iterator"
)

var (
	num  = flag.Int("n", 10, "number of keys in the tree")
	keys = flag.String("k", "1,10,4,7", "comma-separated keys to splay, in order")
)

func main() {
	flag.Parse()

	tr := splay.New(*num)

	fmt.Println("initial tree:")
	fmt.Print(tr.String())

	for _, raw := range strings.Split(*keys, ",") {
		k := must.Must2(strconv.Atoi(strings.TrimSpace(raw)))

		tr.Splay(k)

		root, _ := tr.Root()
		fmt.Printf("\nafter splaying %d (root=%d, depth of 1=%d):\n",
			k, root, tr.Depth(1))
		fmt.Print(tr.String())
	}

	inorder := make([]int, 0, tr.Len())
	i := iterator.NewInOrder(tr)
	for i.Next() {
		inorder = append(inorder, i.Item())
	}

	fmt.Println("\nin-order:", inorder)
}
