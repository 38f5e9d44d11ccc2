package utils

// MovieCacheKey is the Redis key holding the cached movie list.
const MovieCacheKey = "movies:all"
