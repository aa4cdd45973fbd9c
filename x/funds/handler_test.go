package funds

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covault/covault"
	"github.com/covault/covault/coin"
	"github.com/covault/covault/covaulttest"
	"github.com/covault/covault/errors"
	"github.com/covault/covault/store"
)

func TestSendHandler(t *testing.T) {
	src := covaulttest.NewCondition()
	dest := covaulttest.NewCondition()

	amount := coin.NewCoinp(10, 0, "IOV")

	cases := map[string]struct {
		signer  covault.Condition
		msg     covault.Msg
		wantErr *errors.Error
	}{
		"happy path": {
			signer: src,
			msg:    &SendMsg{Src: src.Address(), Dest: dest.Address(), Amount: amount},
		},
		"unauthorized": {
			signer:  dest,
			msg:     &SendMsg{Src: src.Address(), Dest: dest.Address(), Amount: amount},
			wantErr: errors.ErrUnauthorized,
		},
		"zero amount": {
			signer:  src,
			msg:     &SendMsg{Src: src.Address(), Dest: dest.Address(), Amount: coin.NewCoinp(0, 0, "IOV")},
			wantErr: errors.ErrAmount,
		},
		"wrong message type": {
			signer:  src,
			msg:     &covaulttest.Msg{RoutePath: "funds/send"},
			wantErr: errors.ErrType,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			bucket := NewBucket()
			control := NewController(bucket)
			require.NoError(t, control.IssueCoins(db, src.Address(), coin.NewCoin(100, 0, "IOV")))

			h := NewSendHandler(&covaulttest.Auth{Signer: tc.signer}, control)
			tx := &covaulttest.Tx{Msg: tc.msg}

			_, err := h.Check(context.Background(), db, tx)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "check: %+v", err)
			} else {
				assert.NoError(t, err)
			}

			_, err = h.Deliver(context.Background(), db, tx)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "deliver: %+v", err)
				return
			}
			require.NoError(t, err)

			wallet, err := bucket.Get(db, dest.Address())
			require.NoError(t, err)
			require.NotNil(t, wallet)
			assert.True(t, wallet.Coins().Contains(*amount))
		})
	}
}

func TestSendMsgValidate(t *testing.T) {
	src := covaulttest.NewCondition().Address()
	dest := covaulttest.NewCondition().Address()

	cases := map[string]struct {
		msg     *SendMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: &SendMsg{Src: src, Dest: dest, Amount: coin.NewCoinp(1, 0, "IOV"), Memo: "grocery"},
		},
		"missing amount": {
			msg:     &SendMsg{Src: src, Dest: dest},
			wantErr: errors.ErrAmount,
		},
		"negative amount": {
			msg:     &SendMsg{Src: src, Dest: dest, Amount: coin.NewCoinp(-1, 0, "IOV")},
			wantErr: errors.ErrAmount,
		},
		"missing source": {
			msg:     &SendMsg{Dest: dest, Amount: coin.NewCoinp(1, 0, "IOV")},
			wantErr: errors.ErrEmpty,
		},
		"memo too long": {
			msg: &SendMsg{Src: src, Dest: dest, Amount: coin.NewCoinp(1, 0, "IOV"),
				Memo: string(make([]byte, maxMemoSize+1))},
			wantErr: errors.ErrState,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "got %+v", err)
			}
		})
	}
}
