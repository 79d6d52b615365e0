package api

import (
	"net/url"

	pkgapi "github.com/iudanet/chirp/pkg/api"
)

// Пути REST API сервера
const (
	pathLogin         = "/users/login"
	pathUsers         = "/users"
	pathCurrentUser   = "/users/me"
	pathTweets        = "/tweets"
	pathNotifications = "/notifications"
)

const imageContentType = "image/jpeg"

// Login выполняет аутентификацию по email и паролю
func Login(req pkgapi.LoginRequest) Endpoint {
	return NewEndpoint(MethodPost, pathLogin, WithJSON(req))
}

// Register регистрирует нового пользователя
func Register(req pkgapi.RegisterRequest) Endpoint {
	return NewEndpoint(MethodPost, pathUsers, WithJSON(req))
}

// FetchCurrentUser получает профиль текущего пользователя
func FetchCurrentUser() Endpoint {
	return NewEndpoint(MethodGet, pathCurrentUser, Authenticated())
}

// FetchTweets получает ленту
func FetchTweets() Endpoint {
	return NewEndpoint(MethodGet, pathTweets, Authenticated())
}

// CreateTweet публикует твит
func CreateTweet(req pkgapi.CreateTweetRequest) Endpoint {
	return NewEndpoint(MethodPost, pathTweets, Authenticated(), WithJSON(req))
}

// LikeTweet ставит лайк; сервер возвращает обновленный твит
func LikeTweet(tweetID string) Endpoint {
	return NewEndpoint(MethodPut, pathTweets+"/"+url.PathEscape(tweetID)+"/like", Authenticated())
}

// UnlikeTweet снимает лайк; сервер возвращает обновленный твит
func UnlikeTweet(tweetID string) Endpoint {
	return NewEndpoint(MethodPut, pathTweets+"/"+url.PathEscape(tweetID)+"/unlike", Authenticated())
}

// UploadImage прикрепляет картинку к твиту
func UploadImage(tweetID string, image []byte) Endpoint {
	return NewEndpoint(MethodPost, pathTweets+"/"+url.PathEscape(tweetID)+"/image",
		Authenticated(),
		WithMultipart("image", "tweet.jpg", imageContentType, image),
	)
}

// FetchUserProfile получает профиль пользователя по ID
func FetchUserProfile(userID string) Endpoint {
	return NewEndpoint(MethodGet, pathUsers+"/"+url.PathEscape(userID), Authenticated())
}

// UpdateProfile обновляет профиль текущего пользователя
func UpdateProfile(req pkgapi.UpdateProfileRequest) Endpoint {
	return NewEndpoint(MethodPatch, pathCurrentUser, Authenticated(), WithJSON(req))
}

// FetchUserTweets получает твиты пользователя
func FetchUserTweets(userID string) Endpoint {
	return NewEndpoint(MethodGet, pathTweets+"/user/"+url.PathEscape(userID), Authenticated())
}

// UploadAvatar загружает аватар текущего пользователя
func UploadAvatar(image []byte) Endpoint {
	return NewEndpoint(MethodPost, pathCurrentUser+"/avatar",
		Authenticated(),
		WithMultipart("avatar", "avatar.jpg", imageContentType, image),
	)
}

// UploadBanner загружает баннер профиля текущего пользователя
func UploadBanner(image []byte) Endpoint {
	return NewEndpoint(MethodPost, pathCurrentUser+"/banner",
		Authenticated(),
		WithMultipart("banner", "banner.jpg", imageContentType, image),
	)
}

// FetchNotifications получает уведомления пользователя
func FetchNotifications(userID string) Endpoint {
	return NewEndpoint(MethodGet, pathNotifications+"/"+url.PathEscape(userID), Authenticated())
}

// CreateNotification создает уведомление (например, о лайке)
func CreateNotification(req pkgapi.CreateNotificationRequest) Endpoint {
	return NewEndpoint(MethodPost, pathNotifications, Authenticated(), WithJSON(req))
}
