package payment

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/config"
)

// Gateway signs checkout links and verifies result callbacks.
type Gateway interface {
	CheckoutURL(amount string, invID int64, description string) (string, error)
	VerifyResult(outSum string, invID int64, signature string) bool
}

// SignedLinkGateway implements the MD5 signed-link checkout: the link carries
// MD5(login:sum:inv:password1) and the result callback carries
// MD5(sum:inv:password2).
type SignedLinkGateway struct {
	cfg config.PaymentConfig
}

func NewSignedLinkGateway(cfg config.PaymentConfig) *SignedLinkGateway {
	return &SignedLinkGateway{cfg: cfg}
}

func (g *SignedLinkGateway) configured() bool {
	return g.cfg.MerchantLogin != "" && g.cfg.Password1 != "" && g.cfg.Password2 != ""
}

func (g *SignedLinkGateway) CheckoutURL(amount string, invID int64, description string) (string, error) {
	if !g.configured() {
		return "", ErrGatewayNotConfigured
	}

	inv := strconv.FormatInt(invID, 10)
	u := url.Values{}
	u.Set("MerchantLogin", g.cfg.MerchantLogin)
	u.Set("OutSum", amount)
	u.Set("InvId", inv)
	u.Set("Description", description)
	u.Set("SignatureValue", md5Hex(g.cfg.MerchantLogin, amount, inv, g.cfg.Password1))
	if g.cfg.IsTest {
		u.Set("IsTest", "1")
	}
	return g.cfg.BaseURL + "?" + u.Encode(), nil
}

func (g *SignedLinkGateway) VerifyResult(outSum string, invID int64, signature string) bool {
	if !g.configured() {
		return false
	}
	want := md5Hex(outSum, strconv.FormatInt(invID, 10), g.cfg.Password2)
	return strings.EqualFold(signature, want)
}

func md5Hex(parts ...string) string {
	h := md5.Sum([]byte(strings.Join(parts, ":")))
	return strings.ToUpper(hex.EncodeToString(h[:]))
}
