package funds

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/covault/covault"
	"github.com/covault/covault/coin"
	"github.com/covault/covault/covaulttest"
	"github.com/covault/covault/store"
)

func TestFromGenesis(t *testing.T) {
	Convey("Given a genesis stream", t, func() {
		kv := store.MemStore()
		init := Initializer{}
		bucket := NewBucket()

		Convey("When there is no funds section", func() {
			err := init.FromGenesis(covault.Options{"foo": []byte(`"bar"`)}, kv)

			Convey("Nothing is written and no error returned", func() {
				So(err, ShouldBeNil)
			})
		})

		Convey("When accounts are declared", func() {
			addr := covaulttest.NewCondition().Address()
			accts := []GenesisAccount{{
				Address: addr,
				Set:     Set{Coins: mustCombineCoins(coin.NewCoin(100, 5, "ATM"), coin.NewCoin(50, 0, "ETH"))},
			}}
			bz, err := json.Marshal(accts)
			So(err, ShouldBeNil)

			err = init.FromGenesis(covault.Options{"funds": bz}, kv)
			So(err, ShouldBeNil)

			Convey("The wallet holds the declared coins", func() {
				wallet, err := bucket.Get(kv, addr)
				So(err, ShouldBeNil)
				So(wallet, ShouldNotBeNil)
				So(wallet.Coins().Contains(coin.NewCoin(100, 5, "ATM")), ShouldBeTrue)
				So(wallet.Coins().Contains(coin.NewCoin(50, 0, "ETH")), ShouldBeTrue)
			})
		})

		Convey("When coins are declared in the human format", func() {
			raw := []byte(`[{"address":"0102030405060708090021222324252627282930",
				"coins":["50.1234567 FOO"]}]`)
			addr := covault.Address{1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28, 0x29, 0x30}

			err := init.FromGenesis(covault.Options{"funds": raw}, kv)
			So(err, ShouldBeNil)

			Convey("The wallet holds the parsed coin", func() {
				wallet, err := bucket.Get(kv, addr)
				So(err, ShouldBeNil)
				So(wallet, ShouldNotBeNil)
				So(wallet.Coins().Contains(coin.NewCoin(50, 123456700, "FOO")), ShouldBeTrue)
			})
		})

		Convey("When an address is malformed", func() {
			raw := []byte(`[{"address":"1234","coins":["1 FOO"]}]`)
			err := init.FromGenesis(covault.Options{"funds": raw}, kv)

			Convey("Initialization fails", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

// mustCombineCoins has one return value for tests...
func mustCombineCoins(cs ...coin.Coin) coin.Coins {
	s, err := coin.CombineCoins(cs...)
	if err != nil {
		panic(err)
	}
	return s
}
