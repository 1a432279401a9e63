package handlers

type GoogleSignInParam struct {
	IdToken string `json:"idToken"`
}
