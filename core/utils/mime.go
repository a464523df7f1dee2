package utils

import "strings"

// DefaultContentType is used when no suffix in the table matches.
const DefaultContentType = "application/octet-stream"

type suffixType struct {
	suffixes    []string
	contentType string
}

// contentTypes is ordered; the first matching suffix wins.
var contentTypes = []suffixType{
	{[]string{".css"}, "text/css"},
	{[]string{".csv"}, "application/csv"},
	{[]string{".doc", ".dot", ".docx"}, "application/vnd.ms-word"},
	{[]string{".dtd"}, "application/xml-dtd"},
	{[]string{".flv"}, "video/x-flv"},
	{[]string{".gif"}, "image/gif"},
	{[]string{".gzip", ".gz"}, "application/gzip"},
	{[]string{".html", ".htm", ".shtml", ".jsp", ".php"}, "text/html"},
	{[]string{".ico"}, "image/vnd.microsoft.icon"},
	{[]string{".jpg"}, "image/jpeg"},
	{[]string{".js"}, "application/javascript"},
	{[]string{".json"}, "application/json"},
	{[]string{".mp3", ".mpeg"}, "audio/mpeg"},
	{[]string{".mp4"}, "audio/mp4"},
	{[]string{".ogg"}, "application/ogg"},
	{[]string{".pdf"}, "application/pdf"},
	{[]string{".png"}, "image/png"},
	{[]string{".ppt", ".pptx"}, "application/vnd.ms-powerpoint"},
	{[]string{".ps"}, "application/postscript"},
	{[]string{".qt"}, "video/quicktime"},
	{[]string{".ra"}, "audio/vnd.rn-realaudio"},
	{[]string{".tiff"}, "image/tiff"},
	{[]string{".txt"}, "text/plain"},
	{[]string{".xls", ".xlsx"}, "application/vnd.ms-excel"},
	{[]string{".xml"}, "application/xml"},
	{[]string{".vcard"}, "text/vcard"},
	{[]string{".wav"}, "audio/vnd.wave"},
	{[]string{".webm"}, "audio/webm"},
	{[]string{".wmv"}, "video/x-ms-wmv"},
	{[]string{".zip"}, "application/zip"},
}

// ContentType infers the MIME type of an object from the suffix of its key.
// Matching is case-insensitive.
func ContentType(key string) string {
	lc := strings.ToLower(strings.TrimSpace(key))
	for _, entry := range contentTypes {
		for _, suffix := range entry.suffixes {
			if strings.HasSuffix(lc, suffix) {
				return entry.contentType
			}
		}
	}
	return DefaultContentType
}
