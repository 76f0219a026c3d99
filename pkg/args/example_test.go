package args_test

import (
	"fmt"
	"sort"

	"github.com/aretw0/modkit/pkg/args"
	"github.com/aretw0/modkit/pkg/domain"
)

func ExampleParse() {
	allow := domain.NewAllowList("file", "mode", "owner")

	parsed, err := args.Parse(`file=/tmp/a.txt mode=0644 owner="jane doe"`, allow)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	names := make([]string, 0, len(parsed.Bindings))
	for name := range parsed.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s=%s\n", name, parsed.Bindings[name])
	}
	// Output:
	// file=/tmp/a.txt
	// mode=0644
	// owner=jane doe
}

func ExampleParse_positionals() {
	allow := domain.NewAllowList(domain.PositionalMarker)

	parsed, _ := args.Parse(`a b "c d"`, allow)
	fmt.Println(parsed.Positionals)
	// Output: [a b c d]
}
