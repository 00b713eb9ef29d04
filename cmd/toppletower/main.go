// Command toppletower plays Coin Tower Topple against a computer opponent
// that learns the game by self-play.
package main

import (
	"flag"
	"math/rand"
	"time"

	"github.com/golang/glog"

	topple "github.com/lowrycode/coin-tower-topple"
	"github.com/lowrycode/coin-tower-topple/internal/ui"
)

func main() {
	params := topple.DefaultParams()
	episodes := flag.Int("episodes", topple.DefaultEpisodes, "Number of self-play games to train on before play")
	flag.Float64Var(&params.LearningRate, "learning_rate", params.LearningRate, "Weight of new evidence in (0, 1]")
	flag.Float64Var(&params.Discount, "discount", params.Discount, "Weight of future value in [0, 1]")
	seed := flag.Int64("seed", 0, "Random seed (0 to seed from the clock)")
	flag.Parse()
	defer glog.Flush()

	if err := params.Validate(); err != nil {
		glog.Exit(err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	glog.V(1).Infof("Random seed: %d", *seed)

	svc := ui.New(params, *episodes, rand.New(rand.NewSource(*seed)))
	if err := svc.Play(); err != nil {
		glog.Exitf("%+v", err)
	}
}
