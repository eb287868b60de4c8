/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package util

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const debug = false

// ResolveFile is resolving a path to a file and try to find the file
// in a specific set of places and then will return an absolute path to
// it.
// Path needs to be a file or a not found error will be returned.
// The order will be check like this:
//  - if path is absolute it will return a os specific path and
//    an error if the file does not exist
// 	- if path is not absolute we will try first
// 	  - relative to working directory
//	  - relative to executable
//    - relative to user home directory
func ResolveFile(file string) (string, error) {

	fileNotFoundErr := errors.New(fmt.Sprintf("File could not be found: %s", file))

	file = filepath.Clean(file)

	if debug {
		log.Println("Searching folder", file)
	}

	// file is a absolute path
	if filepath.IsAbs(file) {
		if fileExists(file) {
			return file, nil
		}
		return file, fileNotFoundErr
	}

	// file is a relative path
	dir, err := os.Getwd()
	if err == nil {
		if fileExists(filepath.Join(dir, file)) {
			if debug {
				log.Println("Found relative to CWD")
			}
			return filepath.Clean(filepath.Join(dir, file)), nil
		}
	}

	dir, err = os.Executable()
	if err == nil {
		dir = filepath.Dir(dir)
		if fileExists(filepath.Join(dir, file)) {
			if debug {
				log.Println("Found relative to EXE")
			}
			return filepath.Clean(filepath.Join(dir, file)), nil
		}
	}

	dir, err = os.UserHomeDir()
	if err == nil {
		if fileExists(filepath.Join(dir, file)) {
			if debug {
				log.Println("Found relative to USER HOME")
			}
			return filepath.Clean(filepath.Join(dir, file)), nil
		}
	}

	if debug {
		log.Println("File not found", file)
	}
	return file, fileNotFoundErr
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return false
		}
		if debug {
			log.Println("Error trying to find file", filename)
			log.Println("Stat", info, "Err: ", err)
		}
		return false
	}
	if info == nil {
		if debug {
			log.Println("Stat for file is NIL when trying to find file", filename)
			log.Println("Stat", info, "Err: ", err)
		}
		return false
	}
	return info.Mode().IsRegular()
}
