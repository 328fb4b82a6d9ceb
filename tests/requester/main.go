package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080/api"

var paths = []string{
	"/ngo/donations",
	"/ngo/cart",
	"/ngo/orders",
}

func main() {
	token := os.Getenv("SESSION_TOKEN")
	if token == "" {
		fmt.Println("SESSION_TOKEN не задан: запросы будут получать 401")
	}

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(token) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest(token string) {
	url := baseURL + paths[rand.Intn(len(paths))]
	if rand.Intn(5) == 0 {
		url = baseURL + "/stats/impact"
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("GET", url, "->", resp.Status)
	resp.Body.Close()
}
