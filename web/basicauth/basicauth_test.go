package basicauth_test

import (
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/rbviz/web/basicauth"
)

func newTestBasicAuth(t *testing.T, password string) *basicauth.BasicAuth {
	salt, err := basicauth.SaltGenerator(32)
	require.NoError(t, err)

	passwordKey, err := basicauth.DerivePasswordKey([]byte(password), salt)
	require.NoError(t, err)

	auth, err := basicauth.NewBasicAuth("admin", hex.EncodeToString(passwordKey), hex.EncodeToString(salt))
	require.NoError(t, err)

	return auth
}

func TestBasicAuth_Verify(t *testing.T) {
	auth := newTestBasicAuth(t, "secret")

	require.True(t, auth.VerifyUsernameAndPassword("admin", "secret"))
	require.False(t, auth.VerifyUsernameAndPassword("admin", "wrong"))
	require.False(t, auth.VerifyUsernameAndPassword("root", "secret"))
}

func TestNewBasicAuth_InvalidInput(t *testing.T) {
	validHex := hex.EncodeToString(make([]byte, 32))

	_, err := basicauth.NewBasicAuth("", validHex, validHex)
	require.Error(t, err)

	_, err = basicauth.NewBasicAuth("admin", "abcd", validHex)
	require.Error(t, err)

	_, err = basicauth.NewBasicAuth("admin", validHex, "zz"+validHex[2:])
	require.Error(t, err)
}

func TestBasicAuth_Protect(t *testing.T) {
	handler := newTestBasicAuth(t, "secret").Protect("rbviz", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	request := httptest.NewRequest(http.MethodPost, "/api/insert?key=1", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	require.Equal(t, `Basic realm="rbviz"`, recorder.Header().Get("WWW-Authenticate"))

	request.SetBasicAuth("admin", "secret")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusNoContent, recorder.Code)
}
