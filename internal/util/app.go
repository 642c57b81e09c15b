package util

func GetAppName() string {
	return "Akademi HEBAT"
}
