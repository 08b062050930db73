package main

import (
	"fmt"
	"log"

	"github.com/cockroachdb/errors"
	"github.com/theflywheel/dhash"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Fixed 53-slot table with the reference hash pair
	table, err := dhash.New(dhash.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}
	defer table.Destroy()

	fmt.Println("Table created with", table.Cap(), "slots")

	for i, key := range []string{"cat", "dog", "bird"} {
		if err := table.Insert(key, fmt.Sprint(i+1)); err != nil {
			log.Fatalf("Failed to insert %s: %v", key, err)
		}
	}

	for _, key := range []string{"cat", "dog", "bird", "fish"} {
		if value, found := table.Search(key); found {
			fmt.Printf("%s => %s\n", key, value)
		} else {
			fmt.Printf("%s not found\n", key)
		}
	}

	table.Delete("cat")
	st := table.Stats()
	fmt.Printf("After delete: count=%d tombstones=%d\n", st.Count, st.Tombstones)

	// Fill the table until it refuses a key
	var inserted int
	for i := 0; ; i++ {
		err := table.Insert(fmt.Sprintf("filler-%d", i), "x")
		if errors.Is(err, dhash.ErrTableFull) {
			fmt.Printf("Table full after %d extra keys: %v\n", inserted, err)
			break
		}
		if err != nil {
			log.Fatalf("Unexpected insert error: %v", err)
		}
		inserted++
	}

	// A growing table never reports full
	growing, err := dhash.New(dhash.WithMaxLoadFactor(0.7), dhash.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}
	defer growing.Destroy()

	for i := 0; i < 1000; i++ {
		if err := growing.Insert(fmt.Sprintf("key-%d", i), fmt.Sprint(i)); err != nil {
			log.Fatalf("Failed to insert key %d: %v", i, err)
		}
	}
	fmt.Printf("Growing table holds %d keys in %d slots\n", growing.Len(), growing.Cap())

	fmt.Println("Example completed successfully")
}
